package diagram

import (
	"fmt"
	"slices"
)

// Point is a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// String formats the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Size is the width and height of an item.
type Size struct {
	Width, Height float64
}

// Kind distinguishes activities from joints.
type Kind int

const (
	// KindActivity is a regular flow step, drawn as a wide rectangle.
	KindActivity Kind = iota
	// KindJoint is a small square that subdivides a connection.
	KindJoint
)

var kindSizes = map[Kind]Size{
	KindActivity: {Width: 200, Height: 100},
	KindJoint:    {Width: 32, Height: 32},
}

var kindNames = map[Kind]string{
	KindActivity: "activity",
	KindJoint:    "joint",
}

// Size returns the fixed size of items of this kind.
func (k Kind) Size() Size { return kindSizes[k] }

// String returns the lowercase kind name used in diagram files.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindSizes[k]
	return ok
}

// ParseKind maps a kind name back to its Kind. The empty string is an activity.
func ParseKind(s string) (Kind, bool) {
	if s == "" {
		return KindActivity, true
	}
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Item is a positioned node of the diagram.
//
// Items are values: the store hands out copies and accepts whole new
// slices, so modifying an Item never affects the stored snapshot.
type Item struct {
	ID       string
	Kind     Kind
	Position Point    // last committed top-left corner
	Shift    Point    // transient drag offset, zero outside a drag
	Selected bool
	Edges    []string // ordered target ids
}

// Size returns the fixed size of the item's kind.
func (it Item) Size() Size { return it.Kind.Size() }

// Effective returns the on-screen top-left corner: Position + Shift.
func (it Item) Effective() Point { return it.Position.Add(it.Shift) }

// Center returns the center of the item at its effective position.
func (it Item) Center() Point {
	sz := it.Size()
	e := it.Effective()
	return Point{X: e.X + sz.Width/2, Y: e.Y + sz.Height/2}
}

// CenterY returns the vertical center at the effective position.
func (it Item) CenterY() float64 { return it.Effective().Y + it.Size().Height/2 }

// HasEdge reports whether the item has an outgoing edge to target.
func (it Item) HasEdge(target string) bool { return slices.Contains(it.Edges, target) }

// Clone returns a copy of the item that shares no memory with it.
func (it Item) Clone() Item {
	it.Edges = slices.Clone(it.Edges)
	return it
}

// Fold commits the transient shift into the position.
func (it Item) Fold() Item {
	it.Position = it.Effective()
	it.Shift = Point{}
	return it
}

// cloneItems deep-copies a slice of items.
func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
