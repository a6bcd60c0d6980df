package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/flowboard/internal/config"
	"github.com/matzehuels/flowboard/pkg/designer"
	"github.com/matzehuels/flowboard/pkg/diagram"
)

// cellStyle tags a terminal cell with what was drawn into it.
type cellStyle uint8

const (
	cellEmpty cellStyle = iota
	cellLink
	cellItem
	cellSelected
	cellJoint
	cellRect
)

var cellStyles = map[cellStyle]lipgloss.Style{
	cellEmpty:    lipgloss.NewStyle(),
	cellLink:     lipgloss.NewStyle().Foreground(colorDim),
	cellItem:     lipgloss.NewStyle().Foreground(colorWhite),
	cellSelected: lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
	cellJoint:    lipgloss.NewStyle().Foreground(colorGray),
	cellRect:     lipgloss.NewStyle().Foreground(colorYellow),
}

// canvas rasterizes a diagram onto a grid of terminal cells.
type canvas struct {
	w, h   int
	cell   config.TerminalConfig
	runes  [][]rune
	styles [][]cellStyle
}

func newCanvas(w, h int, cell config.TerminalConfig) *canvas {
	c := &canvas{w: w, h: h, cell: cell}
	c.runes = make([][]rune, h)
	c.styles = make([][]cellStyle, h)
	for y := range h {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.styles[y] = make([]cellStyle, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = s
}

// toCell maps a canvas pixel position to the cell containing it.
func (c *canvas) toCell(p diagram.Point) (int, int) {
	return int(math.Floor(p.X / c.cell.CellWidth)), int(math.Floor(p.Y / c.cell.CellHeight))
}

// line draws a dotted segment between two pixel positions.
func (c *canvas) line(a, b diagram.Point) {
	x0, y0 := c.toCell(a)
	x1, y1 := c.toCell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		c.set(x0, y0, '·', cellLink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// box draws a bordered rectangle covering the pixel box b.
func (c *canvas) box(b diagram.Box, s cellStyle, dashed bool) (x0, y0, x1, y1 int) {
	x0, y0 = c.toCell(diagram.Point{X: b.Left, Y: b.Top})
	x1, y1 = c.toCell(diagram.Point{X: b.Right, Y: b.Bottom})
	x1, y1 = max(x0, x1-1), max(y0, y1-1)

	h, v := '─', '│'
	if dashed {
		h, v = '╌', '╎'
	}
	for x := x0; x <= x1; x++ {
		c.set(x, y0, h, s)
		c.set(x, y1, h, s)
	}
	for y := y0; y <= y1; y++ {
		c.set(x0, y, v, s)
		c.set(x1, y, v, s)
	}
	if y1 > y0 && x1 > x0 {
		c.set(x0, y0, '┌', s)
		c.set(x1, y0, '┐', s)
		c.set(x0, y1, '└', s)
		c.set(x1, y1, '┘', s)
	}
	return x0, y0, x1, y1
}

// item draws an activity as a labeled box and a joint as a filled block.
func (c *canvas) item(it diagram.Item) {
	s := cellItem
	if it.Selected {
		s = cellSelected
	}
	b := diagram.BoundsOf(it)

	if it.Kind == diagram.KindJoint {
		if !it.Selected {
			s = cellJoint
		}
		x0, y0 := c.toCell(diagram.Point{X: b.Left, Y: b.Top})
		x1, y1 := c.toCell(diagram.Point{X: b.Right, Y: b.Bottom})
		for y := y0; y <= max(y0, y1-1); y++ {
			for x := x0; x <= max(x0, x1-1); x++ {
				c.set(x, y, '█', s)
			}
		}
		return
	}

	x0, y0, x1, y1 := c.box(b, s, false)
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			c.set(x, y, ' ', s)
		}
	}
	label := []rune(it.ID)
	if room := x1 - x0 - 1; len(label) > room {
		label = label[:max(room, 0)]
	}
	start := x0 + (x1-x0+1-len(label))/2
	for i, r := range label {
		c.set(start+i, (y0+y1)/2, r, s)
	}
}

// String renders the grid, grouping runs of equally styled cells.
func (c *canvas) String() string {
	var sb strings.Builder
	for y := range c.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			sb.WriteString(cellStyles[c.styles[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
	}
	return sb.String()
}

// draw rasterizes links first, then items in paint order, then the
// selection rectangle when one is active.
func (c *canvas) draw(view designer.View) {
	for _, l := range view.Links {
		c.line(l.StartCenter, l.EndCenter)
	}
	for _, it := range view.Items {
		c.item(it)
	}
	if view.Rectangle != nil {
		c.box(*view.Rectangle, cellRect, true)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
