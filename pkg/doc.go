// Package pkg provides the core libraries of the Flowboard diagram editor.
//
// # Overview
//
// Flowboard edits flow diagrams made of activities and joints. Items are
// moved by dragging, settle onto horizontal lanes on release, and align with
// connected neighbors. Connections are derived from each item's outgoing
// edges and can be subdivided by inserting joints.
//
// # Architecture
//
// Pointer events flow through the engine like this:
//
//	pointer down/move/up
//	         ↓
//	    [designer] (session routing, click vs drag, commit)
//	         ↓
//	    [selection], [drag] (press resolution, shift tracking, rectangles)
//	         ↓
//	    [snap] (lane and neighbor alignment on drop)
//	         ↓
//	    [diagram] (validated item store, derived links)
//
// # Quick Start
//
//	items := []diagram.Item{
//	    {ID: "1", Position: diagram.Point{X: 30, Y: 50}, Edges: []string{"2"}},
//	    {ID: "2", Position: diagram.Point{X: 230, Y: 250}},
//	}
//	d, _ := designer.New(items)
//	_ = d.PointerDown(designer.Event{Target: "1", Relative: p, Client: p})
//	_ = d.PointerMove(designer.Event{Client: q})
//	_ = d.PointerUp(designer.Event{})
//
// # Main Packages
//
// [diagram] - Items, links, bounds and the validated item store.
//
// [diagram/transform] - Joint insertion on links.
//
// [selection] - Toggle, exclusive and rectangle selection plus click
// resolution of a press.
//
// [drag] - Pointer session tracking with a click/drag time threshold.
//
// [snap] - Lane snapping and neighbor alignment after a drop.
//
// [designer] - The event-driven editor tying the above together.
//
// [io] - JSON diagrams and TOML replay scripts.
//
// [render/nodelink] - Graphviz rendering to DOT, SVG, PDF and PNG.
//
// [cache] - Rendered artifact cache.
//
// [observability] - Hooks for designer and render events.
//
// [errors] - Coded errors shared by every package.
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/diagram
// [diagram/transform]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/diagram/transform
// [selection]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/selection
// [drag]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/drag
// [snap]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/snap
// [designer]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/designer
// [io]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/flowboard/pkg/errors
package pkg
