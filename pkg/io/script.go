package io

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EventKind names a scripted step.
type EventKind string

const (
	EventDown  EventKind = "down"
	EventMove  EventKind = "move"
	EventUp    EventKind = "up"
	EventJoint EventKind = "joint"
)

// ScriptEvent is one step of a replay script. Client coordinates default to
// the container coordinates, which suits a canvas placed at the origin.
type ScriptEvent struct {
	Kind     EventKind `toml:"kind"`
	Target   string    `toml:"target"`
	X        float64   `toml:"x"`
	Y        float64   `toml:"y"`
	ClientX  *float64  `toml:"client_x"`
	ClientY  *float64  `toml:"client_y"`
	Modifier bool      `toml:"modifier"`
	AtMS     *int64    `toml:"at_ms"`
	Link     string    `toml:"link"`
}

// Client returns the client coordinates of the event.
func (e ScriptEvent) Client() (x, y float64) {
	x, y = e.X, e.Y
	if e.ClientX != nil {
		x = *e.ClientX
	}
	if e.ClientY != nil {
		y = *e.ClientY
	}
	return x, y
}

// At returns the event time relative to start, or false when the event
// has no timestamp.
func (e ScriptEvent) At(start time.Time) (time.Time, bool) {
	if e.AtMS == nil {
		return time.Time{}, false
	}
	return start.Add(time.Duration(*e.AtMS) * time.Millisecond), true
}

// Script is a decoded replay script.
type Script struct {
	Events []ScriptEvent `toml:"event"`
}

// ReadScript decodes a TOML replay script from r. Unknown keys and event
// kinds are rejected, as are joint events without a link.
func ReadScript(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode: unknown key %s", undecoded[0])
	}
	for i, e := range s.Events {
		switch e.Kind {
		case EventDown, EventMove, EventUp:
		case EventJoint:
			if e.Link == "" {
				return nil, fmt.Errorf("event %d: joint without link", i+1)
			}
		default:
			return nil, fmt.Errorf("event %d: unknown kind %q", i+1, e.Kind)
		}
	}
	return &s, nil
}

// ImportScript reads a TOML replay script at path.
func ImportScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadScript(f)
}
