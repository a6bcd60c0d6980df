package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flowboard/pkg/diagram"
	"github.com/matzehuels/flowboard/pkg/observability"
	"github.com/matzehuels/flowboard/pkg/render"
)

// pointsPerInch converts canvas pixels to Graphviz node sizes.
const pointsPerInch = 72

// Options configures node-link rendering.
type Options struct {
	// Selection outlines selected items.
	Selection bool
	// Effective draws items at position + shift instead of the committed
	// position.
	Effective bool
}

// ToDOT converts items to Graphviz DOT with pinned node positions.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Joints are drawn as small grey squares without labels.
func ToDOT(items []diagram.Item, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, fixedsize=true];\n")
	buf.WriteString("\n")

	for _, it := range items {
		fmt.Fprintf(&buf, "  %q [%s];\n", it.ID, strings.Join(fmtAttrs(it, opts), ", "))
	}

	buf.WriteString("\n")
	for _, it := range items {
		for _, target := range it.Edges {
			fmt.Fprintf(&buf, "  %q -> %q;\n", it.ID, target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(it diagram.Item, opts Options) []string {
	if !opts.Effective {
		it.Shift = diagram.Point{}
	}
	c := it.Center()
	sz := it.Size()
	attrs := []string{
		fmt.Sprintf("pos=\"%s,%s!\"", num(c.X), num(-c.Y)),
		fmt.Sprintf("width=%s", num(sz.Width/pointsPerInch)),
		fmt.Sprintf("height=%s", num(sz.Height/pointsPerInch)),
	}
	if it.Kind == diagram.KindJoint {
		attrs = append(attrs, "label=\"\"", "style=filled", "fillcolor=lightgrey")
	} else {
		attrs = append(attrs, fmt.Sprintf("label=%q", it.ID))
	}
	if opts.Selection && it.Selected {
		attrs = append(attrs, "color=\"#2563eb\"", "penwidth=3")
	}
	return attrs
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Format is an output format of [Render].
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// Render produces items in the given format. PNG output uses a 2x scale.
func Render(ctx context.Context, items []diagram.Item, format Format, opts Options) (out []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(format), len(items))
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, string(format), len(out), time.Since(start), err) }()

	dot := ToDOT(items, opts)
	if format == FormatDOT {
		return []byte(dot), nil
	}
	switch format {
	case FormatSVG, FormatPDF, FormatPNG:
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	case FormatPNG:
		return render.ToPNG(ctx, svg, 2.0)
	}
	return svg, nil
}
