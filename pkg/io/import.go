package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/flowboard/pkg/diagram"
)

// ReadJSON decodes a JSON diagram from r.
//
// ReadJSON returns an error if the JSON is malformed, an item has an
// unknown type, or the items fail store validation (duplicate ids, empty
// ids, edges to unknown items). ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]diagram.Item, error) {
	var data document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	items := make([]diagram.Item, len(data.Items))
	for i, it := range data.Items {
		kind, ok := diagram.ParseKind(it.Type)
		if !ok {
			return nil, fmt.Errorf("item %s: unknown type %q", it.ID, it.Type)
		}
		items[i] = diagram.Item{
			ID:       it.ID,
			Kind:     kind,
			Position: diagram.Point{X: it.Left, Y: it.Top},
			Selected: it.Selected,
			Edges:    it.Edges,
		}
	}
	if _, err := diagram.NewStore(items); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return items, nil
}

// ImportJSON reads a JSON diagram file at path.
func ImportJSON(path string) ([]diagram.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
