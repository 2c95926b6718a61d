package core

import "strings"

// ScreenCell is one character position of a Screen.
type ScreenCell struct {
	Rune  rune
	Color Color
}

var blankCell = ScreenCell{Rune: ' '}

// Screen is a character buffer renderers draw snapshots into. Writes
// outside the buffer are dropped, so drawing code never bounds-checks.
type Screen struct {
	width, height int
	cells         []ScreenCell // row-major
}

// NewScreen returns a blank width×height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Resize changes the dimensions. The overlapping top-left area keeps its
// content; new cells are blank.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	cells := make([]ScreenCell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	for y := range Min(height, s.height) {
		copy(cells[y*width:y*width+Min(width, s.width)], s.cells[y*s.width:])
	}
	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks the whole screen.
func (s *Screen) Clear() { s.Fill(' ') }

// Fill sets every cell to r with the default color.
func (s *Screen) Fill(r rune) {
	for i := range s.cells {
		s.cells[i] = ScreenCell{Rune: r}
	}
}

// Set writes r in the default color.
func (s *Screen) Set(x, y int, r rune) { s.SetColored(x, y, r, ColorDefault) }

// SetColored writes r in color c.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = ScreenCell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), a space outside the screen.
func (s *Screen) Get(x, y int) rune { return s.GetCell(x, y).Rune }

// GetCell returns the cell at (x, y), a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) ScreenCell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text left to right from (x, y) in the default color.
func (s *Screen) DrawText(x, y int, text string) { s.DrawTextColored(x, y, text, ColorDefault) }

// DrawTextColored writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawRect fills a w×h block at (x, y).
func (s *Screen) DrawRect(x, y, w, h int, fill rune, c Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.SetColored(xx, yy, fill, c)
		}
	}
}

// DrawBox outlines a w×h box at (x, y) with box-drawing runes. Boxes
// smaller than 2×2 are not drawn.
func (s *Screen) DrawBox(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	for xx := x + 1; xx < x1; xx++ {
		s.Set(xx, y, '─')
		s.Set(xx, y1, '─')
	}
	for yy := y + 1; yy < y1; yy++ {
		s.Set(x, yy, '│')
		s.Set(x1, yy, '│')
	}
	s.Set(x, y, '┌')
	s.Set(x1, y, '┐')
	s.Set(x, y1, '└')
	s.Set(x1, y1, '┘')
}

// Row returns row y as plain text. Rows outside the screen are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
