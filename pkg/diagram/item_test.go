package diagram

import "testing"

func TestKind(t *testing.T) {
	if s := KindActivity.Size(); s.Width != 200 || s.Height != 100 {
		t.Errorf("activity size = %+v, want 200x100", s)
	}
	if s := KindJoint.Size(); s.Width != 32 || s.Height != 32 {
		t.Errorf("joint size = %+v, want 32x32", s)
	}
	for _, name := range []string{"activity", "joint", ""} {
		k, ok := ParseKind(name)
		if !ok {
			t.Errorf("ParseKind(%q) failed", name)
			continue
		}
		if name != "" && k.String() != name {
			t.Errorf("ParseKind(%q).String() = %q", name, k.String())
		}
	}
	if _, ok := ParseKind("gateway"); ok {
		t.Error("ParseKind(gateway) succeeded")
	}
	if Kind(7).Valid() || Kind(7).String() != "unknown" {
		t.Error("Kind(7) reported as known")
	}
}

func TestItem_Geometry(t *testing.T) {
	it := Item{Position: Point{X: 30, Y: 297}, Shift: Point{X: 0, Y: 45}}
	if got := it.Effective(); got != (Point{X: 30, Y: 342}) {
		t.Errorf("Effective() = %v, want (30,342)", got)
	}
	if got := it.Center(); got != (Point{X: 130, Y: 392}) {
		t.Errorf("Center() = %v, want (130,392)", got)
	}
	if got := it.CenterY(); got != 392 {
		t.Errorf("CenterY() = %v, want 392", got)
	}

	folded := it.Fold()
	if folded.Position != (Point{X: 30, Y: 342}) || !folded.Shift.IsZero() {
		t.Errorf("Fold() = %+v, want position (30,342) and zero shift", folded)
	}
	if it.Shift.IsZero() {
		t.Error("Fold() mutated its receiver")
	}
}

func TestItem_Clone(t *testing.T) {
	it := Item{ID: "a", Edges: []string{"b"}}
	c := it.Clone()
	c.Edges[0] = "z"
	if it.Edges[0] != "b" {
		t.Error("Clone() shares edge storage")
	}
	if !it.HasEdge("b") || it.HasEdge("z") {
		t.Error("HasEdge() mismatch")
	}
}
