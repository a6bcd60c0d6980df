package designer

import (
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/diagram/transform"
	"github.com/matzehuels/flowboard/pkg/drag"
	"github.com/matzehuels/flowboard/pkg/errors"
	"github.com/matzehuels/flowboard/pkg/observability"
	"github.com/matzehuels/flowboard/pkg/selection"
	"github.com/matzehuels/flowboard/pkg/snap"
)

// Event is a pointer event from the presentation layer.
type Event struct {
	Target   string        // item id under the pointer, empty for the canvas
	Relative diagram.Point // pointer in container coordinates
	Client   diagram.Point // pointer in client coordinates
	Modifier bool          // additive-selection key held
	At       time.Time     // zero means now
}

// View is the snapshot handed to renderers.
type View struct {
	Items     []diagram.Item
	Links     []diagram.Link
	Rectangle *diagram.Box // nil when no rectangle is being drawn
	Dragging  bool
	Revision  uint64
}

// Designer drives a single diagram. It is not safe for concurrent use;
// events must be delivered from one goroutine in arrival order.
type Designer struct {
	store     *diagram.Store
	drag      *drag.Controller
	rect      selection.Rectangle
	press     *selection.Press
	moving    []string
	upErr     error
	snap      snap.Config
	threshold time.Duration
	now       func() time.Time
	newID     transform.IDFunc
	logger    *log.Logger
	hooks     observability.DesignerHooks
}

// New returns a designer over a copy of items.
func New(items []diagram.Item, opts ...Option) (*Designer, error) {
	store, err := diagram.NewStore(items)
	if err != nil {
		return nil, err
	}
	d := &Designer{
		store:     store,
		snap:      snap.DefaultConfig(),
		threshold: drag.DefaultThreshold,
		now:       time.Now,
		newID:     transform.NewUUID,
		logger:    discardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.drag = drag.NewController(d.threshold)
	d.threshold = d.drag.Threshold()
	return d, nil
}

// Items returns the current snapshot, including transient shifts.
func (d *Designer) Items() []diagram.Item { return d.store.Items() }

// Links returns the links derived from the current snapshot.
func (d *Designer) Links() []diagram.Link { return d.store.Links() }

// Lookup returns the item with the given id.
func (d *Designer) Lookup(id string) (diagram.Item, error) { return d.store.Lookup(id) }

// Selected returns the ids of the selected items.
func (d *Designer) Selected() []string { return d.store.Selected() }

// ItemAt returns the topmost item under p.
func (d *Designer) ItemAt(p diagram.Point) (diagram.Item, bool) { return d.store.ItemAt(p) }

// LinkNear returns the link passing closest to p within tolerance.
func (d *Designer) LinkNear(p diagram.Point, tolerance float64) (diagram.Link, bool) {
	return diagram.NearestLink(d.store.Links(), p, tolerance)
}

// Rectangle returns the bounds of the selecting rectangle, if one is open.
func (d *Designer) Rectangle() (diagram.Box, bool) { return d.rect.Bounds() }

// Dragging reports whether a drag session is open.
func (d *Designer) Dragging() bool { return d.drag.Active() }

// View returns everything a renderer needs for one frame.
func (d *Designer) View() View {
	v := View{
		Items:    d.store.Items(),
		Links:    d.store.Links(),
		Dragging: d.drag.Active(),
		Revision: d.store.Revision(),
	}
	if b, ok := d.rect.Bounds(); ok {
		v.Rectangle = &b
	}
	return v
}

// Load replaces the whole diagram. It fails while a session is open.
func (d *Designer) Load(items []diagram.Item) error {
	if err := d.idle(); err != nil {
		return err
	}
	return d.store.Replace(items)
}

// =============================================================================
// Pointer Events
// =============================================================================

// PointerDown handles a press on an item or on the empty canvas.
func (d *Designer) PointerDown(ev Event) error {
	if err := d.idle(); err != nil {
		return err
	}
	at := d.timeOf(ev)
	if ev.Target == "" {
		return d.startRectangle(ev)
	}

	before := d.store.Items()
	items, press, err := selection.Begin(before, ev.Target, ev.Modifier, at)
	if err != nil {
		return err
	}
	if err := d.replace(before, items); err != nil {
		return err
	}

	moving := selection.IDs(items)
	if err := d.drag.Start(ev.Relative, ev.Client, at, &moveHandler{d: d}); err != nil {
		return err
	}
	d.press = &press
	d.moving = moving
	d.eventHooks().OnDragStart(len(moving))
	d.logger.Debug("drag started", "target", ev.Target, "items", len(moving), "modifier", ev.Modifier)
	return nil
}

func (d *Designer) startRectangle(ev Event) error {
	before := d.store.Items()
	if err := d.replace(before, selection.UnselectAll(before)); err != nil {
		return err
	}
	if err := d.rect.Start(ev.Relative, ev.Client); err != nil {
		return err
	}
	d.logger.Debug("selection rectangle started", "at", ev.Relative)
	return nil
}

// PointerMove forwards pointer motion to the open session. Without a
// session it does nothing.
func (d *Designer) PointerMove(ev Event) error {
	switch {
	case d.drag.Active():
		d.drag.Move(ev.Client)
		err := d.upErr
		d.upErr = nil
		return err
	case d.rect.Active():
		d.rect.Move(ev.Client)
	}
	return nil
}

// PointerUp closes the open session. Without a session it does nothing.
func (d *Designer) PointerUp(ev Event) error {
	switch {
	case d.drag.Active():
		return d.endDrag(ev)
	case d.rect.Active():
		return d.endRectangle()
	}
	return nil
}

func (d *Designer) endDrag(ev Event) error {
	d.upErr = nil
	res, err := d.drag.End(d.timeOf(ev))
	press, moving := d.press, d.moving
	d.press, d.moving = nil, nil
	if err != nil {
		return err
	}
	if d.upErr != nil {
		err, d.upErr = d.upErr, nil
		return err
	}
	d.eventHooks().OnDragEnd(len(moving), res.Canceled, res.Elapsed)
	d.logger.Debug("drag ended",
		"items", len(moving),
		"shift", res.Shift,
		"elapsed", res.Elapsed,
		"canceled", res.Canceled,
		"out_of_bounds", res.OutOfBounds)

	before := d.store.Items()
	items, err := press.Resolve(before, res.Elapsed, res.Canceled, d.threshold)
	if err != nil {
		return err
	}
	return d.replace(before, items)
}

func (d *Designer) endRectangle() error {
	box, err := d.rect.End()
	if err != nil {
		return err
	}
	before := d.store.Items()
	items := selection.WithinRectangle(before, box)
	d.logger.Debug("selection rectangle closed", "bounds", box, "selected", selection.Count(items))
	return d.replace(before, items)
}

// =============================================================================
// Commands
// =============================================================================

// InsertJoint subdivides the link with the given id and returns the new
// joint.
func (d *Designer) InsertJoint(linkID string) (diagram.Item, error) {
	if d.drag.Active() {
		return diagram.Item{}, errors.InvalidState("cannot insert a joint while dragging")
	}
	items, joint, err := transform.InsertJoint(d.store.Items(), linkID, d.newID)
	if err != nil {
		return diagram.Item{}, err
	}
	if err := d.store.Replace(items); err != nil {
		return diagram.Item{}, err
	}
	d.eventHooks().OnJointInserted(linkID, joint.ID)
	d.logger.Info("joint inserted", "link", linkID, "joint", joint.ID, "at", joint.Position)
	return joint, nil
}

// =============================================================================
// Drag Handler
// =============================================================================

// moveHandler applies drag callbacks to the moved items.
type moveHandler struct {
	d *Designer
}

func (h *moveHandler) OnMoved(_, shift diagram.Point) {
	h.d.update(func(it *diagram.Item) { it.Shift = shift })
}

func (h *moveHandler) Accepts(shift diagram.Point) bool {
	for _, it := range h.d.store.Items() {
		if !slices.Contains(h.d.moving, it.ID) {
			continue
		}
		if p := it.Position.Add(shift); p.X < 0 || p.Y < 0 {
			return false
		}
	}
	return true
}

func (h *moveHandler) OnUp(canceled bool) {
	d := h.d
	if canceled {
		d.update(func(it *diagram.Item) { it.Shift = diagram.Point{} })
		return
	}
	d.update(func(it *diagram.Item) { *it = it.Fold() })
	if d.upErr != nil {
		return
	}
	items, adj := snap.Apply(d.store.Items(), d.moving, d.snap)
	for _, a := range adj {
		d.eventHooks().OnSnap(string(a.Pass), a.To-a.From)
		d.logger.Debug("snapped", "item", a.ItemID, "pass", a.Pass, "from", a.From, "to", a.To, "neighbor", a.Neighbor)
	}
	if err := d.store.Replace(items); err != nil {
		d.upErr = err
	}
}

// update applies fn to every moved item and stores the result.
func (d *Designer) update(fn func(*diagram.Item)) {
	items := d.store.Items()
	for i := range items {
		if slices.Contains(d.moving, items[i].ID) {
			fn(&items[i])
		}
	}
	if err := d.store.Replace(items); err != nil {
		d.upErr = err
	}
}

// =============================================================================
// Helpers
// =============================================================================

func (d *Designer) idle() error {
	if d.drag.Active() {
		return errors.InvalidState("drag session already active")
	}
	if d.rect.Active() {
		return errors.InvalidState("selection rectangle already active")
	}
	return nil
}

func (d *Designer) timeOf(ev Event) time.Time {
	if ev.At.IsZero() {
		return d.now()
	}
	return ev.At
}

// replace stores items and reports a selection change against before.
func (d *Designer) replace(before, items []diagram.Item) error {
	if err := d.store.Replace(items); err != nil {
		return err
	}
	if prev, next := selection.IDs(before), selection.IDs(items); !slices.Equal(prev, next) {
		d.eventHooks().OnSelectionChanged(len(next))
		d.logger.Debug("selection changed", "selected", next)
	}
	return nil
}

func (d *Designer) eventHooks() observability.DesignerHooks {
	if d.hooks != nil {
		return d.hooks
	}
	return observability.Designer()
}
