// Package io provides file formats for diagrams and interaction scripts.
//
// # Diagram JSON
//
// Diagrams are stored as a single "items" array. Positions are the last
// committed top-left corners; transient drag shifts are never written.
//
//	{
//	  "items": [
//	    {"id": "1", "type": "activity", "left": 30, "top": 50, "edges": ["2"]},
//	    {"id": "2", "type": "joint", "left": 230, "top": 250, "selected": true}
//	  ]
//	}
//
// Required fields:
//   - id: unique, non-empty item id
//
// Optional fields:
//   - type: "activity" (default) or "joint"
//   - left, top: position, default 0
//   - selected: default false
//   - edges: ordered target ids
//
// [ReadJSON] validates the result the same way [diagram.NewStore] does, so a
// decoded diagram can always be loaded.
//
// # Replay Scripts
//
// Scripts are TOML files holding a list of pointer events and commands,
// replayed in order against a designer. See [ReadScript].
//
//	[[event]]
//	kind = "down"
//	target = "1"
//	x = 40
//	y = 30
//	at_ms = 0
//
//	[[event]]
//	kind = "move"
//	x = 40
//	y = 75
//
//	[[event]]
//	kind = "up"
//	at_ms = 500
//
//	[[event]]
//	kind = "joint"
//	link = "1->2"
package io
