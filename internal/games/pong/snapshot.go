package pong

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/physics"
)

// Snapshot contains the geometry and scores of a Pong match.
type Snapshot struct {
	Field       core.Rect
	Player      core.Rect
	CPU         core.Rect
	Ball        physics.Ball
	PlayerScore int
	CPUScore    int
	WinScore    int
	Serving     bool
	Over        bool
	Winner      Side
	Hits        int // paddle hits in the current rally
}

// Playfield returns the court rectangle.
func (s Snapshot) Playfield() core.Rect { return s.Field }

// Snapshot returns the current match state.
func (g *Game) Snapshot() engine.Snapshot {
	return Snapshot{
		Field:       g.field,
		Player:      g.player,
		CPU:         g.cpu,
		Ball:        g.ball,
		PlayerScore: g.playerScore,
		CPUScore:    g.cpuScore,
		WinScore:    g.cfg.Gameplay.WinScore,
		Serving:     g.serving,
		Over:        g.over,
		Winner:      g.winner,
		Hits:        g.hits,
	}
}
