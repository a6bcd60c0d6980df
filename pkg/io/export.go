package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/flowboard/pkg/diagram"
)

type document struct {
	Items []item `json:"items"`
}

type item struct {
	ID       string   `json:"id"`
	Type     string   `json:"type,omitempty"`
	Left     float64  `json:"left"`
	Top      float64  `json:"top"`
	Selected bool     `json:"selected,omitempty"`
	Edges    []string `json:"edges,omitempty"`
}

// WriteJSON encodes items as an indented JSON diagram and writes it to w.
// Committed positions are written; shifts are dropped.
func WriteJSON(items []diagram.Item, w io.Writer) error {
	out := document{Items: make([]item, len(items))}
	for i, it := range items {
		out.Items[i] = item{
			ID:       it.ID,
			Type:     it.Kind.String(),
			Left:     it.Position.X,
			Top:      it.Position.Y,
			Selected: it.Selected,
			Edges:    it.Edges,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes items to a JSON file at path.
func ExportJSON(items []diagram.Item, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(items, f)
}
