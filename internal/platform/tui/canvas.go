package tui

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// A terminal cell is roughly twice as tall as it is wide, so one column
// spans cellW playfield units and one row spans cellH. Physics then runs
// on a field with square units.
const (
	cellW = 10.0
	cellH = 20.0

	hudRows    = 1 // status line on top
	footerRows = 1 // phase/help line at the bottom
)

// Canvas maps playfield units onto the terminal rows between the HUD and
// the footer.
type Canvas struct {
	Cols int
	Rows int
	Top  int // first screen row of the playfield
}

// NewCanvas builds the canvas for a terminal of the given size.
func NewCanvas(width, height int) Canvas {
	return Canvas{
		Cols: max(width, 0),
		Rows: max(height-hudRows-footerRows, 0),
		Top:  hudRows,
	}
}

// Viewport returns the playfield size handed to the session.
func (c Canvas) Viewport() (w, h float64) {
	return float64(c.Cols) * cellW, float64(c.Rows) * cellH
}

// Cell converts a playfield point to a screen cell.
func (c Canvas) Cell(p core.Vec) (x, y int) {
	x = core.Clamp(int(math.Floor(p.X/cellW)), 0, max(c.Cols-1, 0))
	y = core.Clamp(int(math.Floor(p.Y/cellH)), 0, max(c.Rows-1, 0))
	return x, y + c.Top
}

// Span converts a playfield rectangle to a cell rectangle covering it.
// Every non-empty rectangle covers at least one cell.
func (c Canvas) Span(r core.Rect) (x, y, w, h int) {
	x0, y0 := c.Cell(core.Vec{X: r.X, Y: r.Y})
	x1 := int(math.Ceil(r.Right()/cellW)) - 1
	y1 := int(math.Ceil(r.Bottom()/cellH)) - 1 + c.Top
	x1 = core.Clamp(x1, x0, max(c.Cols-1, 0))
	y1 = core.Clamp(y1, y0, c.Top+max(c.Rows-1, 0))
	return x0, y0, x1 - x0 + 1, y1 - y0 + 1
}

// Fill paints a playfield rectangle.
func (c Canvas) Fill(dst *core.Screen, r core.Rect, ch rune, color core.Color) {
	if r.Empty() {
		return
	}
	x, y, w, h := c.Span(r)
	dst.DrawRect(x, y, w, h, ch, color)
}

// Plot paints the cell under a playfield point.
func (c Canvas) Plot(dst *core.Screen, p core.Vec, ch rune, color core.Color) {
	x, y := c.Cell(p)
	dst.SetColored(x, y, ch, color)
}
