package t2048

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// Snapshot is a copy of the board for renderers and tests.
type Snapshot struct {
	Field   core.Rect
	Board   Board
	Score   int
	Moves   int
	MaxTile int
	Target  int
	Won     bool
	Merges  []int  // merges of the last move
	Spawned *Spawn // tile placed after the last move
}

// Playfield returns the rectangle the board is drawn in.
func (s Snapshot) Playfield() core.Rect { return s.Field }

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() engine.Snapshot {
	snap := Snapshot{
		Field:   g.field,
		Board:   g.board,
		Score:   g.score,
		Moves:   g.moves,
		MaxTile: MaxTile(g.board),
		Target:  g.cfg.TargetValue,
		Won:     g.won,
		Merges:  append([]int(nil), g.last.Merges...),
	}
	if g.lastSpawn != nil {
		sp := *g.lastSpawn
		snap.Spawned = &sp
	}
	return snap
}
