package breakout

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/physics"
)

// Snapshot contains the geometry and counters of a brick breaker game.
type Snapshot struct {
	Field     core.Rect
	Paddle    core.Rect
	Ball      physics.Ball
	Attached  bool
	Bricks    []Brick
	Remaining int
	LayoutID  string
	Layout    string
	SpeedMul  float64
	Score     int
	Lives     int
	Level     int
}

// Playfield returns the playfield rectangle.
func (s Snapshot) Playfield() core.Rect { return s.Field }

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() engine.Snapshot {
	snap := Snapshot{
		Field:     g.field,
		Paddle:    g.paddle,
		Ball:      g.ball,
		Attached:  g.attached,
		Bricks:    append([]Brick(nil), g.bricks...),
		Remaining: CountAlive(g.bricks),
		SpeedMul:  g.speedMul,
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.level,
	}
	if g.layout != nil {
		snap.LayoutID = g.layout.ID
		snap.Layout = g.layout.Name
	}
	return snap
}
