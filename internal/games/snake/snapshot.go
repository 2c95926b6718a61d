package snake

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// Snapshot captures the board for renderers and tests.
type Snapshot struct {
	Field    core.Rect
	Width    int
	Height   int
	Body     []core.Cell // Head at index 0
	Heading  core.Direction
	Fruit    core.Cell
	HasFruit bool
	Score    int
	Steps    int
	Interval float64
}

// Playfield returns the rectangle the board is drawn in.
func (s Snapshot) Playfield() core.Rect { return s.Field }

// Head returns the head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Body) == 0 {
		return core.Cell{}
	}
	return s.Body[0]
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() engine.Snapshot {
	return Snapshot{
		Field:    g.field,
		Width:    g.w,
		Height:   g.h,
		Body:     append([]core.Cell(nil), g.body...),
		Heading:  g.heading,
		Fruit:    g.fruit,
		HasFruit: g.hasFruit,
		Score:    g.score,
		Steps:    g.steps,
		Interval: g.Interval(),
	}
}
