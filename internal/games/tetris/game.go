// Package tetris implements falling-block Tetris on an integer board.
//
// Every change follows the same pattern: build the candidate piece, check
// it against the board, and only commit it when every cell is valid.
package tetris

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/grid"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

// Game implements Tetris.
type Game struct {
	cfg   config.TetrisConfig
	rng   core.Rand
	field core.Rect

	board   *grid.Grid
	current Piece
	bag     []Kind
	next    Kind

	score int
	lines int
	acc   float64
	last  []int // rows removed by the last lock, bottom first
}

func init() {
	registry.Register("tetris", func() engine.Game {
		return New(config.Tetris())
	})
}

// New creates a Tetris game.
func New(cfg config.TetrisConfig) *Game {
	def := config.DefaultTetrisConfig()
	cfg.Board.Width = max(cfg.Board.Width, 4)
	cfg.Board.Height = max(cfg.Board.Height, 4)
	if cfg.Speed.BaseInterval <= 0 {
		cfg.Speed.BaseInterval = def.Speed.BaseInterval
	}
	if cfg.Speed.MinInterval <= 0 {
		cfg.Speed.MinInterval = def.Speed.MinInterval
	}
	if cfg.Speed.LevelFactor <= 0 || cfg.Speed.LevelFactor > 1 {
		cfg.Speed.LevelFactor = def.Speed.LevelFactor
	}
	if cfg.Speed.LevelScore <= 0 {
		cfg.Speed.LevelScore = def.Speed.LevelScore
	}
	if len(cfg.Scoring.Lines) < 4 {
		cfg.Scoring.Lines = def.Scoring.Lines
	}

	return &Game{
		cfg:   cfg,
		rng:   core.NewRand(0),
		board: grid.New(cfg.Board.Width, cfg.Board.Height),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Layout stores the playfield. The well keeps its cell dimensions.
func (g *Game) Layout(field core.Rect) {
	g.field = field
}

// Init empties the well and spawns the first piece.
func (g *Game) Init(rng core.Rand) {
	if rng != nil {
		g.rng = rng
	}
	g.board.Clear()
	g.score = 0
	g.lines = 0
	g.acc = 0
	g.last = nil
	g.bag = g.bag[:0]
	g.next = g.draw()
	g.spawn()
}

// draw takes the next kind from a shuffled bag of all seven pieces.
func (g *Game) draw() Kind {
	if len(g.bag) == 0 {
		for k := KindI; k <= KindL; k++ {
			g.bag = append(g.bag, k)
		}
		for i := len(g.bag) - 1; i > 0; i-- {
			j := g.rng.Intn(i + 1)
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		}
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

// spawn promotes the preview piece to the top of the well. It reports
// false when the piece does not fit.
func (g *Game) spawn() bool {
	p := NewPiece(g.next, core.Cell{})
	p.Pos = core.Cell{X: g.board.Width()/2 - 1, Y: -p.top()}
	g.current = p
	g.next = g.draw()
	return g.valid(p)
}

// valid reports whether every cell of p is on the board and free.
func (g *Game) valid(p Piece) bool {
	for _, c := range p.Cells() {
		if !g.board.Free(c) {
			return false
		}
	}
	return true
}

// try commits p when it is valid.
func (g *Game) try(p Piece) bool {
	if !g.valid(p) {
		return false
	}
	g.current = p
	return true
}

// Level returns the current level.
func (g *Game) Level() int {
	return LevelForScore(g.score, g.cfg.Speed.LevelScore)
}

// Interval returns the current gravity interval.
func (g *Game) Interval() float64 {
	return GravityInterval(g.cfg.Speed, g.Level())
}

// Update applies gravity once per elapsed interval.
func (g *Game) Update(dt float64) engine.Outcome {
	g.acc += dt
	for g.acc >= g.Interval() {
		g.acc -= g.Interval()
		if out := g.fall(); out != engine.OutcomeNone {
			return out
		}
	}
	return engine.OutcomeNone
}

// Handle applies a player command.
func (g *Game) Handle(cmd core.Command) engine.Outcome {
	switch cmd.Kind {
	case core.CmdNudge, core.CmdMove:
		switch cmd.Dir {
		case core.DirLeft:
			g.try(g.current.Moved(-1, 0))
		case core.DirRight:
			g.try(g.current.Moved(1, 0))
		case core.DirDown:
			return g.fall()
		case core.DirUp:
			g.rotate()
		}
	case core.CmdRotate:
		g.rotate()
	case core.CmdDrop:
		return g.hardDrop()
	}
	return engine.OutcomeNone
}

// rotate turns the piece clockwise, trying each horizontal kick in turn.
func (g *Game) rotate() bool {
	r := g.current.Rotated()
	for _, dx := range kicks {
		if g.try(r.Moved(dx, 0)) {
			return true
		}
	}
	return false
}

// fall moves the piece one row down, locking it when it cannot move.
func (g *Game) fall() engine.Outcome {
	if g.try(g.current.Moved(0, 1)) {
		return engine.OutcomeNone
	}
	return g.lock()
}

// hardDrop moves the piece to its landing row and locks it.
func (g *Game) hardDrop() engine.Outcome {
	g.current = g.landing()
	return g.lock()
}

// landing returns the current piece moved down as far as it fits.
func (g *Game) landing() Piece {
	p := g.current
	for g.valid(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

// lock copies the piece into the board, clears full rows, scores them
// and spawns the next piece.
func (g *Game) lock() engine.Outcome {
	for _, c := range g.current.Cells() {
		g.board.Set(c, int(g.current.Kind))
	}
	g.acc = 0

	cleared := g.board.ClearFullRows()
	g.last = cleared
	if n := len(cleared); n > 0 {
		g.score += LineScore(g.cfg.Scoring.Lines, n, g.Level())
		g.lines += n
	}

	if !g.spawn() {
		return engine.OutcomeGameOver
	}
	return engine.OutcomeNone
}

// LineScore returns the points for clearing n rows at once at a level.
func LineScore(table []int, n, level int) int {
	if n <= 0 || len(table) == 0 {
		return 0
	}
	n = min(n, len(table))
	return table[n-1] * level
}

// LevelForScore returns 1 + score/levelScore.
func LevelForScore(score, levelScore int) int {
	if levelScore <= 0 {
		return 1
	}
	return 1 + score/levelScore
}

// GravityInterval returns max(min, base*factor^(level-1)).
func GravityInterval(speed config.TetrisSpeed, level int) float64 {
	level = max(level, 1)
	iv := speed.BaseInterval * math.Pow(speed.LevelFactor, float64(level-1))
	return math.Max(speed.MinInterval, iv)
}

// Status returns the HUD counters.
func (g *Game) Status() engine.Status {
	return engine.Status{
		Score: g.score,
		Level: g.Level(),
	}
}
