package tui

import (
	"fmt"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/games/snake"
	"github.com/vovakirdan/arcade-engine/internal/games/t2048"
	"github.com/vovakirdan/arcade-engine/internal/games/tetris"
)

// board places a w×h cell grid in the canvas, two columns per cell,
// framed and centered.
type board struct {
	x, y int // screen position of cell (0,0)
	w, h int
}

func newBoard(c Canvas, w, h int) board {
	return board{
		x: max((c.Cols-2*w)/2, 1),
		y: c.Top + max((c.Rows-h)/2, 1),
		w: w,
		h: h,
	}
}

func (b board) frame(dst *core.Screen) {
	dst.DrawBox(b.x-1, b.y-1, 2*b.w+2, b.h+2)
}

func (b board) set(dst *core.Screen, cell core.Cell, glyph string, color core.Color) {
	if cell.X < 0 || cell.X >= b.w || cell.Y < 0 || cell.Y >= b.h {
		return
	}
	dst.DrawTextColored(b.x+2*cell.X, b.y+cell.Y, glyph, color)
}

func drawSnake(dst *core.Screen, c Canvas, s snake.Snapshot) {
	b := newBoard(c, s.Width, s.Height)
	b.frame(dst)
	if s.HasFruit {
		b.set(dst, s.Fruit, "<>", core.ColorBrightRed)
	}
	for i := len(s.Body) - 1; i >= 0; i-- {
		glyph, color := "[]", core.ColorGreen
		if i == 0 {
			glyph, color = "@@", core.ColorBrightGreen
		}
		b.set(dst, s.Body[i], glyph, color)
	}
}

// pieceColors is indexed by tetris.Kind.
var pieceColors = [tetris.KindCount + 1]core.Color{
	tetris.KindNone: core.ColorDefault,
	tetris.KindI:    core.ColorBrightCyan,
	tetris.KindO:    core.ColorBrightYellow,
	tetris.KindT:    core.ColorBrightMagenta,
	tetris.KindS:    core.ColorBrightGreen,
	tetris.KindZ:    core.ColorBrightRed,
	tetris.KindJ:    core.ColorBrightBlue,
	tetris.KindL:    core.ColorOrange,
}

func drawTetris(dst *core.Screen, c Canvas, s tetris.Snapshot) {
	b := newBoard(c, s.Width, s.Height)
	b.frame(dst)
	for y, row := range s.Board {
		for x, v := range row {
			if v != 0 {
				b.set(dst, core.Cell{X: x, Y: y}, "[]", pieceColors[v])
			}
		}
	}
	if s.Current.Kind != tetris.KindNone {
		for _, cell := range s.Ghost {
			b.set(dst, cell, "::", core.ColorGray)
		}
		for _, cell := range s.Current.Cells() {
			b.set(dst, cell, "[]", pieceColors[s.Current.Kind])
		}
	}

	side := b.x + 2*b.w + 3
	dst.DrawText(side, b.y, "Next")
	preview := tetris.NewPiece(s.Next, core.Cell{X: 1, Y: 2})
	for _, cell := range preview.Cells() {
		dst.DrawTextColored(side+2*cell.X, b.y+cell.Y, "[]", pieceColors[s.Next])
	}
	dst.DrawText(side, b.y+5, fmt.Sprintf("Lines %d", s.Lines))
}

// tileColors follows tile value order: 2, 4, 8, ...
var tileColors = []core.Color{
	core.ColorWhite,
	core.ColorBrightWhite,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

const tileW, tileH = 7, 3

func drawT2048(dst *core.Screen, c Canvas, s t2048.Snapshot) {
	n := t2048.BoardSize
	x0 := max((c.Cols-n*tileW)/2, 0)
	y0 := c.Top + max((c.Rows-n*tileH)/2, 0)
	dst.DrawBox(x0-1, y0-1, n*tileW+2, n*tileH+2)

	for y := range n {
		for x := range n {
			v := s.Board[y][x]
			tx, ty := x0+x*tileW, y0+y*tileH
			dst.DrawBox(tx, ty, tileW, tileH)
			if v == 0 {
				continue
			}
			color := tileColors[min(log2(v)-1, len(tileColors)-1)]
			if s.Spawned != nil && s.Spawned.Cell == (core.Cell{X: x, Y: y}) {
				color = core.ColorGray
			}
			label := fmt.Sprintf("%d", v)
			dst.DrawTextColored(tx+(tileW-len(label))/2, ty+1, label, color)
		}
	}
}

func log2(v int) int {
	n := 0
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
