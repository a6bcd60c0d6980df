package diagram

import "testing"

func TestIntersects(t *testing.T) {
	a := Box{Top: 0, Left: 0, Bottom: 100, Right: 200}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"overlap", Box{Top: 50, Left: 150, Bottom: 150, Right: 300}, true},
		{"contained", Box{Top: 10, Left: 10, Bottom: 20, Right: 20}, true},
		{"touching edge", Box{Top: 100, Left: 0, Bottom: 200, Right: 10}, true},
		{"below", Box{Top: 101, Left: 0, Bottom: 200, Right: 10}, false},
		{"above", Box{Top: -50, Left: 0, Bottom: -1, Right: 10}, false},
		{"right", Box{Top: 0, Left: 201, Bottom: 10, Right: 300}, false},
		{"left", Box{Top: 0, Left: -20, Bottom: 10, Right: -0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(a, tt.b); got != tt.want {
				t.Errorf("Intersects(a, %+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := Intersects(tt.b, a); got != tt.want {
				t.Errorf("Intersects(%+v, a) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRectangleExactness(t *testing.T) {
	first := Item{ID: "first", Position: Point{X: 0, Y: 0}}
	second := Item{ID: "second", Position: Point{X: 300, Y: 0}}
	rect := Box{Top: 0, Left: 50, Bottom: 50, Right: 250}

	if !Intersects(BoundsOf(first), rect) {
		t.Error("rectangle misses first item")
	}
	if Intersects(BoundsOf(second), rect) {
		t.Error("rectangle hits second item")
	}
}

func TestBoundsOf(t *testing.T) {
	it := Item{Kind: KindJoint, Position: Point{X: 10, Y: 20}, Shift: Point{X: -5, Y: 5}}
	want := Box{Top: 25, Left: 5, Bottom: 57, Right: 37}
	if got := BoundsOf(it); got != want {
		t.Errorf("BoundsOf() = %+v, want %+v", got, want)
	}
}

func TestBoxFromCorners(t *testing.T) {
	got := BoxFromCorners(Point{X: 40, Y: 10}, Point{X: 5, Y: 70})
	want := Box{Top: 10, Left: 5, Bottom: 70, Right: 40}
	if got != want {
		t.Errorf("BoxFromCorners() = %+v, want %+v", got, want)
	}
	if got.Width() != 35 || got.Height() != 60 {
		t.Errorf("size = %vx%v, want 35x60", got.Width(), got.Height())
	}
	if !got.Contains(Point{X: 5, Y: 10}) || got.Contains(Point{X: 4, Y: 10}) {
		t.Error("Contains() boundary mismatch")
	}
}
