package diagram

import "math"

// Box is an axis-aligned rectangle in canvas space. Edges are inclusive.
type Box struct {
	Top, Left, Bottom, Right float64
}

// BoundsOf returns the box covered by the item at its effective position.
func BoundsOf(it Item) Box {
	e := it.Effective()
	sz := it.Size()
	return Box{Top: e.Y, Left: e.X, Bottom: e.Y + sz.Height, Right: e.X + sz.Width}
}

// PointBox returns the degenerate box covering only p.
func PointBox(p Point) Box {
	return Box{Top: p.Y, Left: p.X, Bottom: p.Y, Right: p.X}
}

// BoxFromCorners returns the box spanned by two opposite corners given in
// any order.
func BoxFromCorners(a, b Point) Box {
	return Box{
		Top:    math.Min(a.Y, b.Y),
		Left:   math.Min(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
		Right:  math.Max(a.X, b.X),
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.Bottom - b.Top }

// Contains reports whether p lies inside or on the edge of the box.
func (b Box) Contains(p Point) bool { return Intersects(b, PointBox(p)) }

// Intersects reports whether two boxes overlap or touch. It is the standard
// separating-axis test: the boxes are disjoint only if one lies entirely
// above, below, left or right of the other.
func Intersects(a, b Box) bool {
	return !(a.Top > b.Bottom || b.Top > a.Bottom || a.Right < b.Left || b.Right < a.Left)
}
