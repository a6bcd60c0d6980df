// Package render exports diagrams to image formats.
//
// # Overview
//
// The [nodelink] subpackage turns an item snapshot into Graphviz DOT with
// every item pinned at its canvas position, and renders it to SVG in
// process. This package adds format conversion on top:
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [ToPDF] and [ToPNG] use the external rsvg-convert tool (from librsvg).
//
// [nodelink]: github.com/matzehuels/flowboard/pkg/render/nodelink
package render
