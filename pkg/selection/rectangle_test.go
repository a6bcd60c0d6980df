package selection

import (
	"testing"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

func TestRectangle(t *testing.T) {
	var r Rectangle
	if r.Active() {
		t.Fatal("zero Rectangle is active")
	}

	// container sits at (100,20) in client space
	if err := r.Start(diagram.Point{X: 50, Y: 40}, diagram.Point{X: 150, Y: 60}); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := r.Start(diagram.Point{}, diagram.Point{}); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("second Start() error = %v, want INVALID_STATE", err)
	}

	got, ok := r.Move(diagram.Point{X: 120, Y: 200})
	want := diagram.Box{Top: 40, Left: 20, Bottom: 180, Right: 50}
	if !ok || got != want {
		t.Errorf("Move() = %+v, %v, want %+v", got, ok, want)
	}
	if b, ok := r.Bounds(); !ok || b != want {
		t.Errorf("Bounds() = %+v, %v, want %+v", b, ok, want)
	}

	final, err := r.End()
	if err != nil || final != want {
		t.Errorf("End() = %+v, %v, want %+v", final, err, want)
	}
	if r.Active() {
		t.Error("Rectangle active after End()")
	}
	if _, err := r.End(); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("End() when idle error = %v, want INVALID_STATE", err)
	}
	if _, ok := r.Move(diagram.Point{}); ok {
		t.Error("Move() when idle reported true")
	}
}

func TestRectangle_NoMotion(t *testing.T) {
	var r Rectangle
	_ = r.Start(diagram.Point{X: 7, Y: 9}, diagram.Point{X: 7, Y: 9})
	got, _ := r.End()
	if got != diagram.PointBox(diagram.Point{X: 7, Y: 9}) {
		t.Errorf("End() = %+v, want degenerate box at (7,9)", got)
	}
}
