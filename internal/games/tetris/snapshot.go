package tetris

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// Snapshot is a copy of the well, the falling piece and the preview.
type Snapshot struct {
	Field   core.Rect
	Width   int
	Height  int
	Board   [][]int // Kind values, 0 is empty
	Current Piece
	Ghost   [4]core.Cell // where a hard drop would land
	Next    Kind
	Score   int
	Level   int
	Lines   int
	Cleared []int // rows removed by the last lock
}

// Playfield returns the rectangle the well is drawn in.
func (s Snapshot) Playfield() core.Rect { return s.Field }

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() engine.Snapshot {
	return Snapshot{
		Field:   g.field,
		Width:   g.board.Width(),
		Height:  g.board.Height(),
		Board:   g.board.Rows(),
		Current: g.current,
		Ghost:   g.landing().Cells(),
		Next:    g.next,
		Score:   g.score,
		Level:   g.Level(),
		Lines:   g.lines,
		Cleared: append([]int(nil), g.last...),
	}
}
