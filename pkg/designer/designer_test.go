package designer

import (
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
	"github.com/matzehuels/flowboard/pkg/observability"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type recordingHooks struct {
	observability.NoopDesignerHooks
	selections []int
	dragStarts []int
	dragEnds   []bool
	snaps      []string
	joints     []string
}

func (h *recordingHooks) OnSelectionChanged(n int) { h.selections = append(h.selections, n) }
func (h *recordingHooks) OnDragStart(n int)        { h.dragStarts = append(h.dragStarts, n) }
func (h *recordingHooks) OnDragEnd(_ int, canceled bool, _ time.Duration) {
	h.dragEnds = append(h.dragEnds, canceled)
}
func (h *recordingHooks) OnSnap(pass string, _ float64)       { h.snaps = append(h.snaps, pass) }
func (h *recordingHooks) OnJointInserted(_, jointID string) { h.joints = append(h.joints, jointID) }

func newDesigner(t *testing.T, items []diagram.Item, opts ...Option) (*Designer, *recordingHooks) {
	t.Helper()
	hooks := &recordingHooks{}
	d, err := New(items, append([]Option{WithHooks(hooks)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return d, hooks
}

func mustItem(t *testing.T, d *Designer, id string) diagram.Item {
	t.Helper()
	it, err := d.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup(%q) error: %v", id, err)
	}
	return it
}

// dragBy presses on target, moves the pointer by delta and releases after
// elapsed.
func dragBy(t *testing.T, d *Designer, target string, delta diagram.Point, elapsed time.Duration, modifier bool) {
	t.Helper()
	origin := diagram.Point{X: 140, Y: 410}
	if err := d.PointerDown(Event{Target: target, Relative: diagram.Point{X: 40, Y: 10}, Client: origin, Modifier: modifier, At: t0}); err != nil {
		t.Fatalf("PointerDown() error: %v", err)
	}
	if err := d.PointerMove(Event{Client: origin.Add(delta), At: t0.Add(elapsed / 2)}); err != nil {
		t.Fatalf("PointerMove() error: %v", err)
	}
	if err := d.PointerUp(Event{Client: origin.Add(delta), At: t0.Add(elapsed)}); err != nil {
		t.Fatalf("PointerUp() error: %v", err)
	}
}

func TestDragAbsorbedByLaneSnap(t *testing.T) {
	d, hooks := newDesigner(t, []diagram.Item{
		{ID: "A", Position: diagram.Point{X: 30, Y: 297}, Selected: true},
		{ID: "B", Position: diagram.Point{X: 400, Y: 17}},
	})

	dragBy(t, d, "A", diagram.Point{X: 0, Y: 45}, 500*time.Millisecond, false)

	a := mustItem(t, d, "A")
	if a.Position != (diagram.Point{X: 30, Y: 297}) {
		t.Errorf("A.Position = %v, want (30,297)", a.Position)
	}
	if !a.Shift.IsZero() {
		t.Errorf("A.Shift = %v, want zero", a.Shift)
	}
	if got := d.Selected(); !slices.Equal(got, []string{"A"}) {
		t.Errorf("Selected() = %v, want [A]", got)
	}
	if !slices.Equal(hooks.dragEnds, []bool{false}) {
		t.Errorf("drag ends = %v, want one commit", hooks.dragEnds)
	}
	if !slices.Equal(hooks.snaps, []string{"lane"}) {
		t.Errorf("snaps = %v, want [lane]", hooks.snaps)
	}
}

func TestDragCommitFoldsShift(t *testing.T) {
	d, _ := newDesigner(t, []diagram.Item{
		{ID: "A", Position: diagram.Point{X: 30, Y: 17}, Selected: true},
		{ID: "B", Position: diagram.Point{X: 400, Y: 17}},
	})

	if err := d.PointerDown(Event{Target: "A", Client: diagram.Point{X: 100, Y: 100}, At: t0}); err != nil {
		t.Fatalf("PointerDown() error: %v", err)
	}
	_ = d.PointerMove(Event{Client: diagram.Point{X: 120, Y: 240}})

	live := mustItem(t, d, "A")
	if live.Position != (diagram.Point{X: 30, Y: 17}) || live.Shift != (diagram.Point{X: 20, Y: 140}) {
		t.Errorf("during drag A = %v + %v, want (30,17) + (20,140)", live.Position, live.Shift)
	}
	if !d.Dragging() || !d.View().Dragging {
		t.Error("Dragging() = false during drag")
	}
	if b := mustItem(t, d, "B"); !b.Shift.IsZero() {
		t.Errorf("unselected B carries shift %v", b.Shift)
	}

	_ = d.PointerUp(Event{At: t0.Add(time.Second)})
	a := mustItem(t, d, "A")
	if a.Position != live.Effective() || !a.Shift.IsZero() {
		t.Errorf("after commit A = %v + %v, want %v + (0,0)", a.Position, a.Shift, live.Effective())
	}
	if d.Dragging() {
		t.Error("Dragging() = true after release")
	}
}

func TestDragCancel(t *testing.T) {
	tests := []struct {
		name    string
		delta   diagram.Point
		elapsed time.Duration
	}{
		{"short press", diagram.Point{X: 50, Y: 50}, 100 * time.Millisecond},
		{"left edge", diagram.Point{X: -40, Y: 0}, time.Second},
		{"top edge", diagram.Point{X: 0, Y: -18}, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []diagram.Item{
				{ID: "A", Position: diagram.Point{X: 30, Y: 17}, Selected: true},
				{ID: "B", Position: diagram.Point{X: 400, Y: 157}, Selected: true},
			}
			d, hooks := newDesigner(t, items)

			dragBy(t, d, "B", tt.delta, tt.elapsed, false)

			for _, want := range items {
				got := mustItem(t, d, want.ID)
				if got.Position != want.Position || !got.Shift.IsZero() {
					t.Errorf("%s = %v + %v, want %v + (0,0)", want.ID, got.Position, got.Shift, want.Position)
				}
			}
			if !slices.Equal(hooks.dragEnds, []bool{true}) {
				t.Errorf("drag ends = %v, want one cancel", hooks.dragEnds)
			}
			if len(hooks.snaps) != 0 {
				t.Errorf("snaps = %v, want none", hooks.snaps)
			}
		})
	}
}

func TestDragMovesWholeSelection(t *testing.T) {
	d, _ := newDesigner(t, []diagram.Item{
		{ID: "1", Position: diagram.Point{X: 30, Y: 17}, Selected: true},
		{ID: "2", Position: diagram.Point{X: 300, Y: 17}, Selected: true},
		{ID: "3", Position: diagram.Point{X: 600, Y: 17}},
	})

	dragBy(t, d, "1", diagram.Point{X: 10, Y: 140}, 400*time.Millisecond, false)

	want := map[string]diagram.Point{
		"1": {X: 40, Y: 157},
		"2": {X: 310, Y: 157},
		"3": {X: 600, Y: 17},
	}
	for id, pos := range want {
		if got := mustItem(t, d, id).Position; got != pos {
			t.Errorf("%s.Position = %v, want %v", id, got, pos)
		}
	}
	if got := d.Selected(); !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("Selected() = %v, want [1 2]", got)
	}
}

func TestClickSelection(t *testing.T) {
	tests := []struct {
		name     string
		before   []bool
		target   string
		modifier bool
		want     []string
	}{
		{"click collapses selection", []bool{true, true, false}, "1", false, []string{"1"}},
		{"click selects unselected", []bool{true, false, false}, "3", false, []string{"3"}},
		{"click clears lone selection", []bool{true, false, false}, "1", false, nil},
		{"modifier adds", []bool{true, false, false}, "2", true, []string{"1", "2"}},
		{"modifier removes", []bool{true, true, false}, "2", true, []string{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []diagram.Item{
				{ID: "1", Position: diagram.Point{X: 30, Y: 17}},
				{ID: "2", Position: diagram.Point{X: 300, Y: 17}},
				{ID: "3", Position: diagram.Point{X: 600, Y: 17}},
			}
			for i := range items {
				items[i].Selected = tt.before[i]
			}
			d, _ := newDesigner(t, items)

			dragBy(t, d, tt.target, diagram.Point{}, 120*time.Millisecond, tt.modifier)

			if got := d.Selected(); !slices.Equal(got, tt.want) {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectangleSelection(t *testing.T) {
	d, hooks := newDesigner(t, []diagram.Item{
		{ID: "first", Position: diagram.Point{X: 0, Y: 0}},
		{ID: "second", Position: diagram.Point{X: 300, Y: 0}, Selected: true},
	})

	// container offset (100,100)
	if err := d.PointerDown(Event{Relative: diagram.Point{X: 50, Y: 0}, Client: diagram.Point{X: 150, Y: 100}, At: t0}); err != nil {
		t.Fatalf("PointerDown() error: %v", err)
	}
	if got := d.Selected(); len(got) != 0 {
		t.Errorf("Selected() after canvas press = %v, want none", got)
	}
	_ = d.PointerMove(Event{Client: diagram.Point{X: 350, Y: 150}})

	v := d.View()
	want := diagram.Box{Top: 0, Left: 50, Bottom: 50, Right: 250}
	if v.Rectangle == nil || *v.Rectangle != want {
		t.Fatalf("View().Rectangle = %v, want %+v", v.Rectangle, want)
	}

	_ = d.PointerUp(Event{At: t0.Add(time.Second)})
	if got := d.Selected(); !slices.Equal(got, []string{"first"}) {
		t.Errorf("Selected() = %v, want [first]", got)
	}
	if _, ok := d.Rectangle(); ok {
		t.Error("rectangle still open after release")
	}
	if !slices.Equal(hooks.selections, []int{0, 1}) {
		t.Errorf("selection events = %v, want [0 1]", hooks.selections)
	}
}

func TestNeighborAlignmentOnDrop(t *testing.T) {
	d, hooks := newDesigner(t, []diagram.Item{
		{ID: "1", Position: diagram.Point{X: 30, Y: 17}, Selected: true, Edges: []string{"2"}},
		{ID: "2", Position: diagram.Point{X: 400, Y: 200}},
	})

	// 117 snaps to lane 157, then aligns with 2's center at 250
	dragBy(t, d, "1", diagram.Point{X: 0, Y: 100}, time.Second, false)

	if got := mustItem(t, d, "1").Position.Y; got != 200 {
		t.Errorf("1.top = %v, want 200", got)
	}
	if !slices.Equal(hooks.snaps, []string{"lane", "align"}) {
		t.Errorf("snaps = %v, want [lane align]", hooks.snaps)
	}
	links := d.Links()
	if len(links) != 1 || links[0].StartCenter.Y != links[0].EndCenter.Y {
		t.Errorf("link not horizontal after alignment: %+v", links)
	}
}

func TestSessionsAreExclusive(t *testing.T) {
	d, _ := newDesigner(t, []diagram.Item{{ID: "A", Position: diagram.Point{X: 30, Y: 17}}})

	_ = d.PointerDown(Event{Target: "A", At: t0})
	if err := d.PointerDown(Event{Target: "A", At: t0}); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("second PointerDown() error = %v, want INVALID_STATE", err)
	}
	if err := d.PointerDown(Event{At: t0}); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("canvas PointerDown() during drag error = %v, want INVALID_STATE", err)
	}
	if _, err := d.InsertJoint("A->A"); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("InsertJoint() during drag error = %v, want INVALID_STATE", err)
	}
	if err := d.Load(nil); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("Load() during drag error = %v, want INVALID_STATE", err)
	}
	_ = d.PointerUp(Event{At: t0.Add(time.Second)})

	_ = d.PointerDown(Event{At: t0})
	if err := d.PointerDown(Event{Target: "A", At: t0}); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("PointerDown() during rectangle error = %v, want INVALID_STATE", err)
	}
	_ = d.PointerUp(Event{At: t0})
	if err := d.PointerDown(Event{Target: "A", At: t0}); err != nil {
		t.Errorf("PointerDown() after release error: %v", err)
	}
}

func TestIdleEventsAreIgnored(t *testing.T) {
	d, _ := newDesigner(t, []diagram.Item{{ID: "A"}})
	if err := d.PointerMove(Event{Client: diagram.Point{X: 5}}); err != nil {
		t.Errorf("PointerMove() while idle error: %v", err)
	}
	if err := d.PointerUp(Event{}); err != nil {
		t.Errorf("PointerUp() while idle error: %v", err)
	}
}

func TestUnknownTarget(t *testing.T) {
	d, _ := newDesigner(t, []diagram.Item{{ID: "A", Selected: true}})
	rev := d.View().Revision

	if err := d.PointerDown(Event{Target: "ghost", At: t0}); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("PointerDown(ghost) error = %v, want NOT_FOUND", err)
	}
	if d.Dragging() || d.View().Revision != rev {
		t.Error("failed PointerDown changed state")
	}
}

func TestInsertJoint(t *testing.T) {
	d, hooks := newDesigner(t, []diagram.Item{
		{ID: "1", Position: diagram.Point{X: 30, Y: 50}, Edges: []string{"2"}},
		{ID: "2", Position: diagram.Point{X: 230, Y: 250}, Edges: []string{"3"}},
		{ID: "3", Position: diagram.Point{X: 630, Y: 250}},
	}, WithIDFunc(func() string { return "j1" }))

	joint, err := d.InsertJoint("1->2")
	if err != nil {
		t.Fatalf("InsertJoint() error: %v", err)
	}
	if joint.Position != (diagram.Point{X: 214, Y: 184}) {
		t.Errorf("joint.Position = %v, want (214,184)", joint.Position)
	}

	var ids []string
	for _, l := range d.Links() {
		ids = append(ids, l.ID)
	}
	if want := []string{"1->j1", "2->3", "j1->2"}; !slices.Equal(ids, want) {
		t.Errorf("links = %v, want %v", ids, want)
	}
	if len(d.Items()) != 4 {
		t.Errorf("len(Items()) = %d, want 4", len(d.Items()))
	}
	if !slices.Equal(hooks.joints, []string{"j1"}) {
		t.Errorf("joint events = %v, want [j1]", hooks.joints)
	}

	if _, err := d.InsertJoint("1->2"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("InsertJoint() on removed link error = %v, want NOT_FOUND", err)
	}
}

func TestClockOption(t *testing.T) {
	now := t0
	d, hooks := newDesigner(t, []diagram.Item{{ID: "A", Position: diagram.Point{X: 30, Y: 17}}},
		WithClock(func() time.Time { return now }),
		WithClickThreshold(50*time.Millisecond))

	_ = d.PointerDown(Event{Target: "A"})
	now = now.Add(60 * time.Millisecond)
	_ = d.PointerUp(Event{})

	if !slices.Equal(hooks.dragEnds, []bool{false}) {
		t.Errorf("drag ends = %v, want a commit past the 50ms threshold", hooks.dragEnds)
	}
}

func TestNew_InvalidItems(t *testing.T) {
	_, err := New([]diagram.Item{{ID: "a", Edges: []string{"b"}}})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("New() error = %v, want NOT_FOUND", err)
	}
}

func TestHitTesting(t *testing.T) {
	d, _ := newDesigner(t, []diagram.Item{
		{ID: "1", Position: diagram.Point{X: 0, Y: 17}, Edges: []string{"2"}},
		{ID: "2", Position: diagram.Point{X: 400, Y: 17}},
	})
	if it, ok := d.ItemAt(diagram.Point{X: 450, Y: 50}); !ok || it.ID != "2" {
		t.Errorf("ItemAt() = %q, %v, want 2", it.ID, ok)
	}
	if _, ok := d.ItemAt(diagram.Point{X: 300, Y: 300}); ok {
		t.Error("ItemAt() on empty canvas reported a hit")
	}
	if l, ok := d.LinkNear(diagram.Point{X: 300, Y: 70}, 5); !ok || l.ID != "1->2" {
		t.Errorf("LinkNear() = %q, %v, want 1->2", l.ID, ok)
	}
}
