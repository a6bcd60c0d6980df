package io

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/errors"
)

func TestReadJSON(t *testing.T) {
	in := `{"items": [
		{"id": "1", "left": 30, "top": 50, "edges": ["2"]},
		{"id": "2", "type": "joint", "left": 230.5, "top": 250, "selected": true}
	]}`
	items, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Kind != diagram.KindActivity || !slices.Equal(items[0].Edges, []string{"2"}) {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Kind != diagram.KindJoint || !items[1].Selected || items[1].Position.X != 230.5 {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"items": [`, ""},
		{"unknown field", `{"items": [{"id": "a", "width": 3}]}`, ""},
		{"unknown type", `{"items": [{"id": "a", "type": "gateway"}]}`, ""},
		{"duplicate", `{"items": [{"id": "a"}, {"id": "a"}]}`, errors.ErrCodeDuplicateID},
		{"dangling", `{"items": [{"id": "a", "edges": ["b"]}]}`, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("ReadJSON() succeeded, want error")
			}
			if tt.code != "" && !errors.Is(err, tt.code) {
				t.Errorf("ReadJSON() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	items := []diagram.Item{
		{ID: "1", Position: diagram.Point{X: 30, Y: 50}, Shift: diagram.Point{X: 99, Y: 99}, Edges: []string{"j"}},
		{ID: "j", Kind: diagram.KindJoint, Position: diagram.Point{X: 10, Y: 20}, Selected: true},
	}
	path := filepath.Join(t.TempDir(), "diagram.json")
	if err := ExportJSON(items, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if got[0].Position != items[0].Position || !got[0].Shift.IsZero() {
		t.Errorf("got[0] = %+v, want committed position and no shift", got[0])
	}
	if got[1].Kind != diagram.KindJoint || !got[1].Selected {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestWriteJSON_Format(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON([]diagram.Item{{ID: "a", Position: diagram.Point{X: 1, Y: 2}}}, &buf)
	if err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	want := "{\n  \"items\": [\n    {\n      \"id\": \"a\",\n      \"type\": \"activity\",\n      \"left\": 1,\n      \"top\": 2\n    }\n  ]\n}\n"
	if buf.String() != want {
		t.Errorf("WriteJSON() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestImportJSON_Missing(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ImportJSON() on missing file succeeded")
	}
}

func TestReadScript(t *testing.T) {
	in := `
[[event]]
kind = "down"
target = "1"
x = 40
y = 30
client_x = 140
modifier = true
at_ms = 0

[[event]]
kind = "move"
x = 40
y = 75

[[event]]
kind = "up"
at_ms = 500

[[event]]
kind = "joint"
link = "1->2"
`
	s, err := ReadScript(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadScript() error: %v", err)
	}
	if len(s.Events) != 4 {
		t.Fatalf("len(Events) = %d, want 4", len(s.Events))
	}
	down := s.Events[0]
	if x, y := down.Client(); x != 140 || y != 30 {
		t.Errorf("Client() = (%v,%v), want (140,30)", x, y)
	}
	if !down.Modifier || down.Target != "1" {
		t.Errorf("down = %+v", down)
	}

	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if at, ok := s.Events[2].At(start); !ok || !at.Equal(start.Add(500*time.Millisecond)) {
		t.Errorf("At() = %v, %v, want start+500ms", at, ok)
	}
	if _, ok := s.Events[1].At(start); ok {
		t.Error("move without at_ms reported a time")
	}
	if s.Events[3].Link != "1->2" {
		t.Errorf("joint link = %q", s.Events[3].Link)
	}
}

func TestReadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad toml", "[[event]\nkind ="},
		{"unknown kind", "[[event]]\nkind = \"hover\""},
		{"joint without link", "[[event]]\nkind = \"joint\""},
		{"unknown key", "[[event]]\nkind = \"up\"\nbutton = 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadScript(strings.NewReader(tt.in)); err == nil {
				t.Error("ReadScript() succeeded, want error")
			}
		})
	}
}
