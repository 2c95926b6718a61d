// Package t2048 implements the 2048 tile-merge game.
package t2048

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

// Spawn records the tile placed after a move.
type Spawn struct {
	Cell  core.Cell
	Value int
}

// Game implements the 2048 puzzle game.
type Game struct {
	cfg   config.T2048Config
	rng   core.Rand
	field core.Rect

	board     Board
	score     int
	moves     int
	won       bool
	last      MoveResult
	lastSpawn *Spawn
}

func init() {
	registry.Register("2048", func() engine.Game {
		return New(config.T2048())
	})
}

// New creates a 2048 game.
func New(cfg config.T2048Config) *Game {
	cfg.StartTiles = core.Clamp(cfg.StartTiles, 0, BoardSize*BoardSize)
	cfg.FourChance = core.ClampF(cfg.FourChance, 0, 1)
	if cfg.TargetValue <= 0 {
		cfg.TargetValue = 2048
	}
	return &Game{cfg: cfg, rng: core.NewRand(0)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "2048" }

// Title returns the display name.
func (g *Game) Title() string { return "2048" }

// Layout stores the playfield. The board is size independent.
func (g *Game) Layout(field core.Rect) {
	g.field = field
}

// Init clears the board and places the starting tiles.
func (g *Game) Init(rng core.Rand) {
	if rng != nil {
		g.rng = rng
	}
	g.board = Board{}
	g.score = 0
	g.moves = 0
	g.won = false
	g.last = MoveResult{}
	g.lastSpawn = nil
	for range g.cfg.StartTiles {
		g.spawnTile()
	}
}

// SetBoard replaces the board. Intended for tests and puzzles.
func (g *Game) SetBoard(b Board) {
	g.board = b
}

// Update does nothing: the board only changes on moves.
func (g *Game) Update(float64) engine.Outcome {
	return engine.OutcomeNone
}

// Handle applies a swipe. Nudge is accepted as an alias for Move.
func (g *Game) Handle(cmd core.Command) engine.Outcome {
	switch cmd.Kind {
	case core.CmdMove, core.CmdNudge:
		return g.move(cmd.Dir)
	}
	return engine.OutcomeNone
}

// move compacts the board; a no-op move spawns nothing and consumes no turn.
func (g *Game) move(dir core.Direction) engine.Outcome {
	res := Slide(g.board, dir)
	if !res.Changed {
		return engine.OutcomeNone
	}

	g.board = res.Board
	g.score += res.Score
	g.moves++
	g.last = res
	g.lastSpawn = g.spawnTile()
	if MaxTile(g.board) >= g.cfg.TargetValue {
		g.won = true
	}

	if IsGameOver(g.board) {
		return engine.OutcomeGameOver
	}
	return engine.OutcomeNone
}

// spawnTile places a 2 or a 4 in a uniformly chosen empty cell.
func (g *Game) spawnTile() *Spawn {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return nil
	}
	c := empty[g.rng.Intn(len(empty))]
	v := 2
	if core.Chance(g.rng, g.cfg.FourChance) {
		v = 4
	}
	g.board[c.Y][c.X] = v
	return &Spawn{Cell: c, Value: v}
}

// Status returns the HUD counters. Level is the largest tile.
func (g *Game) Status() engine.Status {
	return engine.Status{
		Score: g.score,
		Level: MaxTile(g.board),
	}
}
