// Package grid provides the integer cell board used by the discrete games.
// A cell value of 0 means empty; any other value is game-defined (a color
// index, a piece id).
package grid

import "github.com/vovakirdan/arcade-engine/internal/core"

// Grid is a dense W×H board stored row-major.
type Grid struct {
	w, h  int
	cells []int
}

// New creates an empty grid. Non-positive sizes produce an empty grid.
func New(w, h int) *Grid {
	w, h = core.Max(w, 0), core.Max(h, 0)
	return &Grid{w: w, h: h, cells: make([]int, w*h)}
}

// FromRows builds a grid from a slice of rows. Rows shorter than the first
// one are zero-padded.
func FromRows(rows [][]int) *Grid {
	if len(rows) == 0 {
		return New(0, 0)
	}
	g := New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < g.w && x < len(row); x++ {
			g.cells[y*g.w+x] = row[x]
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// In reports whether c lies on the board.
func (g *Grid) In(c core.Cell) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Index returns the row-major index of c. c must be on the board.
func (g *Grid) Index(c core.Cell) int {
	return c.Y*g.w + c.X
}

// CellAt is the inverse of Index.
func (g *Grid) CellAt(i int) core.Cell {
	if g.w == 0 {
		return core.Cell{}
	}
	return core.Cell{X: i % g.w, Y: i / g.w}
}

// At returns the value at c, or 0 off the board.
func (g *Grid) At(c core.Cell) int {
	if !g.In(c) {
		return 0
	}
	return g.cells[g.Index(c)]
}

// Set stores v at c. Off-board writes are ignored.
func (g *Grid) Set(c core.Cell, v int) {
	if !g.In(c) {
		return
	}
	g.cells[g.Index(c)] = v
}

// Free reports whether c is on the board and empty.
func (g *Grid) Free(c core.Cell) bool {
	return g.In(c) && g.cells[g.Index(c)] == 0
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Rows returns a copy of the board as a slice of rows.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.h)
	for y := range rows {
		rows[y] = make([]int, g.w)
		copy(rows[y], g.cells[y*g.w:(y+1)*g.w])
	}
	return rows
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// EmptyCells lists all empty cells in row-major order.
func (g *Grid) EmptyCells() []core.Cell {
	var cells []core.Cell
	for i, v := range g.cells {
		if v == 0 {
			cells = append(cells, g.CellAt(i))
		}
	}
	return cells
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.h || g.w == 0 {
		return false
	}
	for _, v := range g.cells[y*g.w : (y+1)*g.w] {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row and shifts the rows above it down,
// filling the top with empty rows. It returns the indices (before the
// shift) of the removed rows, bottom first.
func (g *Grid) ClearFullRows() []int {
	var cleared []int
	write := g.h - 1
	for read := g.h - 1; read >= 0; read-- {
		if g.RowFull(read) {
			cleared = append(cleared, read)
			continue
		}
		if write != read {
			copy(g.cells[write*g.w:(write+1)*g.w], g.cells[read*g.w:(read+1)*g.w])
		}
		write--
	}
	for y := write; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			g.cells[y*g.w+x] = 0
		}
	}
	return cleared
}
