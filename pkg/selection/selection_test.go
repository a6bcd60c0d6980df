package selection

import (
	"slices"
	"testing"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

func three(selected ...string) []diagram.Item {
	items := []diagram.Item{
		{ID: "a", Position: diagram.Point{X: 0, Y: 0}},
		{ID: "b", Position: diagram.Point{X: 300, Y: 0}},
		{ID: "c", Position: diagram.Point{X: 0, Y: 300}},
	}
	for i := range items {
		items[i].Selected = slices.Contains(selected, items[i].ID)
	}
	return items
}

func TestToggle_Exclusive(t *testing.T) {
	tests := []struct {
		name   string
		before []string
		target string
		once   []string
		twice  []string
	}{
		{"single selected, toggle it", []string{"a"}, "a", nil, []string{"a"}},
		{"single selected, toggle other", []string{"a"}, "b", []string{"b"}, nil},
		{"none selected", nil, "c", []string{"c"}, nil},
		{"two selected", []string{"a", "b"}, "a", nil, []string{"a"}},
		{"all selected", []string{"a", "b", "c"}, "b", nil, []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := three(tt.before...)
			once, err := Toggle(items, tt.target, false)
			if err != nil {
				t.Fatalf("Toggle() error: %v", err)
			}
			if got := IDs(once); !slices.Equal(got, tt.once) {
				t.Errorf("after one toggle = %v, want %v", got, tt.once)
			}
			twice, _ := Toggle(once, tt.target, false)
			if got := IDs(twice); !slices.Equal(got, tt.twice) {
				t.Errorf("after two toggles = %v, want %v", got, tt.twice)
			}
			if got := IDs(items); !slices.Equal(got, tt.before) {
				t.Errorf("input changed to %v", got)
			}
		})
	}
}

func TestToggle_Additive(t *testing.T) {
	items, _ := Toggle(three("a"), "b", true)
	if got := IDs(items); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("IDs() = %v, want [a b]", got)
	}
	items, _ = Toggle(items, "a", true)
	if got := IDs(items); !slices.Equal(got, []string{"b"}) {
		t.Errorf("IDs() = %v, want [b]", got)
	}
}

func TestSet(t *testing.T) {
	items, _ := Set(three("a", "b"), "b", true, false)
	if got := IDs(items); !slices.Equal(got, []string{"b"}) {
		t.Errorf("IDs() = %v, want [b]", got)
	}
	items, _ = Set(three("a", "b"), "c", false, true)
	if got := IDs(items); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("IDs() = %v, want [a b]", got)
	}
}

func TestUnknownID(t *testing.T) {
	if _, err := Toggle(three(), "zz", false); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Toggle(zz) error = %v, want NOT_FOUND", err)
	}
	if _, err := Set(three(), "zz", true, true); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Set(zz) error = %v, want NOT_FOUND", err)
	}
}

func TestUnselectAll(t *testing.T) {
	items := UnselectAll(three("a", "c"))
	if Count(items) != 0 {
		t.Errorf("Count() = %d, want 0", Count(items))
	}
}

func TestWithinRectangle(t *testing.T) {
	items := []diagram.Item{
		{ID: "first", Position: diagram.Point{X: 0, Y: 0}},
		{ID: "second", Position: diagram.Point{X: 300, Y: 0}, Selected: true},
	}
	rect := diagram.Box{Top: 0, Left: 50, Bottom: 50, Right: 250}
	got := WithinRectangle(items, rect)
	if ids := IDs(got); !slices.Equal(ids, []string{"first"}) {
		t.Errorf("WithinRectangle() selected %v, want [first]", ids)
	}
}
