// Package nodelink renders diagrams as Graphviz node-link drawings.
//
// # Overview
//
// Unlike a layered Graphviz layout, a diagram already has a layout: every
// item sits where the user dropped it. [ToDOT] therefore emits a neato graph
// with each node pinned ("pos=x,y!") at its center, sized to its kind, so
// Graphviz only draws boxes and arrows.
//
// # Usage
//
//	dot := nodelink.ToDOT(items, nodelink.Options{Selection: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [Render] wraps both steps and reports to the registered
// observability.RenderHooks.
//
// # Coordinates
//
// One canvas pixel maps to one Graphviz point. Graphviz's y axis points up,
// so y coordinates are negated; the exported SVG is shifted back into view
// by Graphviz itself.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
