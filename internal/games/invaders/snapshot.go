package invaders

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// Snapshot contains the geometry and counters of the formation game.
type Snapshot struct {
	Field       core.Rect
	Player      core.Rect
	Aliens      []Alien
	PlayerShots []Shot
	EnemyShots  []Shot
	Direction   float64
	Score       int
	Lives       int
	Wave        int
	Alive       int
	Cooldown    float64
}

// Playfield returns the playfield rectangle.
func (s Snapshot) Playfield() core.Rect { return s.Field }

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() engine.Snapshot {
	return Snapshot{
		Field:       g.field,
		Player:      g.player,
		Aliens:      append([]Alien(nil), g.aliens...),
		PlayerShots: append([]Shot(nil), g.playerShots[:]...),
		EnemyShots:  append([]Shot(nil), g.enemyShots...),
		Direction:   g.dir,
		Score:       g.score,
		Lives:       g.lives,
		Wave:        g.wave,
		Alive:       g.Alive(),
		Cooldown:    g.cooldown,
	}
}
