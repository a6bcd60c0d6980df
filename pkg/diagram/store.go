package diagram

import (
	"slices"

	"github.com/matzehuels/flowboard/pkg/errors"
)

// Store holds the current item snapshot and the links derived from it.
//
// The zero value is an empty store. Use NewStore to load an initial graph.
type Store struct {
	items    []Item
	index    map[string]int
	links    []Link
	revision uint64
}

// NewStore validates items and returns a store holding a copy of them.
// See [Store.Replace] for the validation rules.
func NewStore(items []Item) (*Store, error) {
	s := &Store{}
	if err := s.Replace(items); err != nil {
		return nil, err
	}
	return s, nil
}

// Replace atomically swaps the snapshot for a copy of items.
//
// Replace returns an ErrCodeInvalidInput error for malformed ids or kinds,
// ErrCodeDuplicateID if two items share an id, and ErrCodeNotFound if an
// edge targets an id that is not in items. On error the store is unchanged.
// Repeated targets within one item's edge list are collapsed to their first
// occurrence.
func (s *Store) Replace(items []Item) error {
	next := cloneItems(items)
	index, err := validate(next)
	if err != nil {
		return err
	}
	s.items = next
	s.index = index
	s.links = deriveLinks(next, index)
	s.revision++
	return nil
}

// Items returns a copy of the current snapshot in insertion order.
func (s *Store) Items() []Item { return cloneItems(s.items) }

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Revision counts successful replacements. Renderers use it to skip
// redraws of an unchanged snapshot.
func (s *Store) Revision() uint64 { return s.revision }

// Lookup returns the item with the given id, or an ErrCodeNotFound error.
func (s *Store) Lookup(id string) (Item, error) {
	i, ok := s.index[id]
	if !ok {
		return Item{}, errors.NotFound("item", id)
	}
	return s.items[i].Clone(), nil
}

// Contains reports whether an item with the given id exists.
func (s *Store) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Links returns the links derived from the current snapshot.
func (s *Store) Links() []Link { return slices.Clone(s.links) }

// Link returns the link with the given id, or an ErrCodeNotFound error.
func (s *Store) Link(id string) (Link, error) {
	for _, l := range s.links {
		if l.ID == id {
			return l, nil
		}
	}
	return Link{}, errors.NotFound("link", id)
}

// Selected returns the ids of selected items in insertion order.
func (s *Store) Selected() []string {
	var ids []string
	for _, it := range s.items {
		if it.Selected {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// ItemAt returns the topmost item whose bounds contain p. Later items are
// drawn above earlier ones, so the search runs back to front.
func (s *Store) ItemAt(p Point) (Item, bool) {
	hit := PointBox(p)
	for i := len(s.items) - 1; i >= 0; i-- {
		if Intersects(BoundsOf(s.items[i]), hit) {
			return s.items[i].Clone(), true
		}
	}
	return Item{}, false
}

// Index maps item ids to their position in items.
func Index(items []Item) map[string]int {
	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.ID] = i
	}
	return index
}

func validate(items []Item) (map[string]int, error) {
	index := make(map[string]int, len(items))
	for i, it := range items {
		if err := errors.ValidateItemID(it.ID); err != nil {
			return nil, err
		}
		if !it.Kind.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "item %q has unknown kind %d", it.ID, it.Kind)
		}
		if _, dup := index[it.ID]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateID, "duplicate item id %q", it.ID)
		}
		index[it.ID] = i
	}
	for i := range items {
		items[i].Edges = dedupe(items[i].Edges)
		for _, target := range items[i].Edges {
			if _, ok := index[target]; !ok {
				return nil, errors.New(errors.ErrCodeNotFound, "edge %s%s%s: target item not found",
					items[i].ID, errors.LinkSeparator, target)
			}
		}
	}
	return index, nil
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
