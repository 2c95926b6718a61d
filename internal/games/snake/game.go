// Package snake implements the classic Snake game on a fixed grid.
package snake

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/grid"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

// Game implements the Snake game.
type Game struct {
	cfg   config.SnakeConfig
	rng   core.Rand
	field core.Rect

	w, h int

	// Snake state
	body    []core.Cell // Head at index 0
	occ     *intmap.Map[int, struct{}]
	heading core.Direction
	next    core.Direction // Buffered heading for the next step

	fruit    core.Cell
	hasFruit bool
	score    int
	acc      float64 // Seconds accumulated toward the next step
	steps    int
}

func init() {
	registry.Register("snake", func() engine.Game {
		return New(config.Snake())
	})
}

// New creates a Snake game.
func New(cfg config.SnakeConfig) *Game {
	cfg.Grid.Width = max(cfg.Grid.Width, 3)
	cfg.Grid.Height = max(cfg.Grid.Height, 1)
	cfg.Grid.StartLength = core.Clamp(cfg.Grid.StartLength, 1, cfg.Grid.Width)
	if cfg.Speed.BaseInterval <= 0 {
		cfg.Speed.BaseInterval = config.DefaultSnakeConfig().Speed.BaseInterval
	}
	cfg.Speed.MaxMultiplier = max(cfg.Speed.MaxMultiplier, 1)

	return &Game{
		cfg: cfg,
		rng: core.NewRand(0),
		w:   cfg.Grid.Width,
		h:   cfg.Grid.Height,
		occ: intmap.New[int, struct{}](cfg.Grid.Width * cfg.Grid.Height),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Layout stores the playfield. The board keeps its cell dimensions; the
// renderer maps cells onto the field.
func (g *Game) Layout(field core.Rect) {
	g.field = field
}

// Init places a fresh snake in the middle of the board heading right.
func (g *Game) Init(rng core.Rand) {
	if rng != nil {
		g.rng = rng
	}
	g.score = 0
	g.acc = 0
	g.steps = 0
	g.heading = core.DirRight
	g.next = core.DirRight

	n := g.cfg.Grid.StartLength
	headX := (g.w + n) / 2
	if headX >= g.w {
		headX = g.w - 1
	}
	y := g.h / 2
	g.body = g.body[:0]
	for i := range n {
		g.body = append(g.body, core.Cell{X: headX - i, Y: y})
	}
	g.rebuildOccupancy()
	g.spawnFruit()
}

func (g *Game) key(c core.Cell) int {
	return c.Y*g.w + c.X
}

func (g *Game) rebuildOccupancy() {
	g.occ.Clear()
	for _, c := range g.body {
		g.occ.Put(g.key(c), struct{}{})
	}
}

func (g *Game) occupied(c core.Cell) bool {
	_, ok := g.occ.Get(g.key(c))
	return ok
}

func (g *Game) inBounds(c core.Cell) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// spawnFruit places fruit on a random free cell. It reports false when
// the snake fills the board.
func (g *Game) spawnFruit() bool {
	c, ok := grid.RandomFree(g.rng, g.w, g.h, g.occupied, grid.DefaultAttempts)
	g.fruit, g.hasFruit = c, ok
	return ok
}

// StepInterval returns the seconds between steps for a score:
// base / min(maxMultiplier, 1 + score*perFruit).
func StepInterval(speed config.SnakeSpeed, score int) float64 {
	mult := min(speed.MaxMultiplier, 1+float64(score)*speed.PerFruit)
	if mult <= 0 {
		mult = 1
	}
	return speed.BaseInterval / mult
}

// Interval returns the current step interval.
func (g *Game) Interval() float64 {
	return StepInterval(g.cfg.Speed, g.score)
}

// Update accumulates dt and advances one cell per elapsed interval.
func (g *Game) Update(dt float64) engine.Outcome {
	g.acc += dt
	for g.acc >= g.Interval() {
		g.acc -= g.Interval()
		if out := g.step(); out != engine.OutcomeNone {
			return out
		}
	}
	return engine.OutcomeNone
}

// Handle changes the buffered heading. Reversal onto the neck is ignored.
func (g *Game) Handle(cmd core.Command) engine.Outcome {
	switch cmd.Kind {
	case core.CmdTurnLeft:
		g.next = g.heading.CounterClockwise()
	case core.CmdTurnRight:
		g.next = g.heading.Clockwise()
	case core.CmdNudge, core.CmdMove:
		if cmd.Dir != core.DirNone && cmd.Dir != g.heading.Opposite() {
			g.next = cmd.Dir
		}
	}
	return engine.OutcomeNone
}

// step computes the next head, validates it and only then moves the
// snake.
func (g *Game) step() engine.Outcome {
	if len(g.body) == 0 {
		return engine.OutcomeNone
	}
	g.heading = g.next
	head := g.body[0].Add(g.heading.Delta())

	if !g.inBounds(head) {
		return engine.OutcomeGameOver
	}
	eating := g.hasFruit && head == g.fruit
	tail := g.body[len(g.body)-1]
	if g.occupied(head) && (eating || head != tail) {
		return engine.OutcomeGameOver
	}

	g.steps++
	if !eating {
		g.occ.Del(g.key(tail))
		g.body = g.body[:len(g.body)-1]
	}
	g.body = append(g.body, core.Cell{})
	copy(g.body[1:], g.body)
	g.body[0] = head
	g.occ.Put(g.key(head), struct{}{})

	if eating {
		g.score++
		if !g.spawnFruit() {
			return engine.OutcomeGameOver
		}
	}
	return engine.OutcomeNone
}

// Status returns the HUD counters. Level is the snake's length.
func (g *Game) Status() engine.Status {
	return engine.Status{
		Score: g.score,
		Level: len(g.body),
	}
}
