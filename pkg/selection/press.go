package selection

import (
	"time"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

// DefaultClickThreshold separates clicks from drags.
const DefaultClickThreshold = 300 * time.Millisecond

// Press records a pointer-down on an item.
type Press struct {
	ItemID         string
	WasSelected    bool // selection of the item before the press
	SelectedBefore int  // number of selected items before the press
	Modifier       bool
	At             time.Time
}

// Begin records a press on the item with the given id and applies the
// immediate part of the selection: an item that was not selected becomes
// selected, additively if modifier is held. A press on an already selected
// item leaves the snapshot unchanged.
func Begin(items []diagram.Item, id string, modifier bool, at time.Time) ([]diagram.Item, Press, error) {
	var (
		found bool
		press = Press{ItemID: id, Modifier: modifier, At: at}
	)
	for _, it := range items {
		if it.Selected {
			press.SelectedBefore++
		}
		if it.ID == id {
			found = true
			press.WasSelected = it.Selected
		}
	}
	if !found {
		return nil, Press{}, errors.NotFound("item", id)
	}
	if press.WasSelected {
		return clone(items), press, nil
	}
	out, err := Set(items, id, true, modifier)
	if err != nil {
		return nil, Press{}, err
	}
	return out, press, nil
}

// IsClick reports whether a release after elapsed counts as a click.
func (p Press) IsClick(elapsed time.Duration, canceled bool, threshold time.Duration) bool {
	return canceled && elapsed < threshold
}

// Resolve applies the deferred click decision on release. If the release
// does not count as a click, items are returned unchanged.
func (p Press) Resolve(items []diagram.Item, elapsed time.Duration, canceled bool, threshold time.Duration) ([]diagram.Item, error) {
	if !p.IsClick(elapsed, canceled, threshold) {
		return clone(items), nil
	}
	if p.SelectedBefore > 1 && !p.Modifier {
		return Set(items, p.ItemID, true, false)
	}
	return Set(items, p.ItemID, !p.WasSelected, p.Modifier)
}
