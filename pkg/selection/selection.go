package selection

import (
	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

// Toggle flips the selection of the item with the given id.
func Toggle(items []diagram.Item, id string, additive bool) ([]diagram.Item, error) {
	return update(items, id, additive, func(selected bool) bool { return !selected })
}

// Set forces the selection of the item with the given id to value.
func Set(items []diagram.Item, id string, value, additive bool) ([]diagram.Item, error) {
	return update(items, id, additive, func(bool) bool { return value })
}

func update(items []diagram.Item, id string, additive bool, next func(bool) bool) ([]diagram.Item, error) {
	target := -1
	for i, it := range items {
		if it.ID == id {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, errors.NotFound("item", id)
	}
	out := clone(items)
	for i := range out {
		switch {
		case i == target:
			out[i].Selected = next(out[i].Selected)
		case !additive:
			out[i].Selected = false
		}
	}
	return out, nil
}

// UnselectAll clears every item's selection.
func UnselectAll(items []diagram.Item) []diagram.Item {
	out := clone(items)
	for i := range out {
		out[i].Selected = false
	}
	return out
}

// WithinRectangle selects exactly the items whose bounds intersect box.
func WithinRectangle(items []diagram.Item, box diagram.Box) []diagram.Item {
	out := clone(items)
	for i := range out {
		out[i].Selected = diagram.Intersects(diagram.BoundsOf(out[i]), box)
	}
	return out
}

// IDs returns the ids of the selected items in order.
func IDs(items []diagram.Item) []string {
	var ids []string
	for _, it := range items {
		if it.Selected {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Count returns the number of selected items.
func Count(items []diagram.Item) int {
	n := 0
	for _, it := range items {
		if it.Selected {
			n++
		}
	}
	return n
}

func clone(items []diagram.Item) []diagram.Item {
	out := make([]diagram.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
