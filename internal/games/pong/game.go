// Package pong implements a classic Pong game with CPU opponent.
// The player controls the left paddle, the CPU the right one.
package pong

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/physics"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	// serveDelay is the pause before a served ball starts moving, seconds.
	serveDelay = 1.0
	// cpuTracking is the fraction of the ball speed a full-skill CPU paddle
	// moves vertically.
	cpuTracking = 0.3
)

// Side identifies a player.
type Side int

const (
	SidePlayer Side = iota
	SideCPU
)

// Game implements the Pong game logic. Positions are playfield units.
type Game struct {
	cfg    config.PongConfig
	rng    core.Rand
	field  core.Rect
	placed core.Rect // field the entities were last laid out in

	player core.Rect
	cpu    core.Rect
	ball   physics.Ball

	playerScore int
	cpuScore    int
	winner      Side
	over        bool
	hits        int

	serving    bool
	serveTimer float64
	serveRel   float64 // angle offset of the pending serve
	serveH     float64 // horizontal sign of the pending serve
	serveV     float64 // vertical sign of the pending serve
}

func init() {
	registry.Register("pong", func() engine.Game {
		return New(config.Pong())
	})
}

// New creates a new Pong game instance.
func New(cfg config.PongConfig) *Game {
	def := config.DefaultPongConfig()
	if cfg.Gameplay.WinScore <= 0 {
		cfg.Gameplay.WinScore = def.Gameplay.WinScore
	}
	if cfg.Ball.Speed <= 0 {
		cfg.Ball.Speed = def.Ball.Speed
	}
	cfg.Ball.SpeedUp = max(cfg.Ball.SpeedUp, 1)
	cfg.Ball.MaxSpeed = max(cfg.Ball.MaxSpeed, cfg.Ball.Speed)
	if cfg.Bounce.Max < cfg.Bounce.Min {
		cfg.Bounce = def.Bounce
	}
	return &Game{cfg: cfg, rng: core.NewRand(0)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "pong" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Pong" }

// Layout resizes the court. Entities keep their relative positions; on
// the first usable field they are placed from scratch.
func (g *Game) Layout(field core.Rect) {
	old := g.placed
	g.field = field
	if field.Empty() {
		return
	}
	g.placed = field

	pw, ph := g.paddleSize()
	if old.Empty() {
		g.placePaddles(pw, ph)
		g.centerBall()
		return
	}

	sx, sy := field.W/old.W, field.H/old.H
	rescale := func(r core.Rect) core.Rect {
		cy := field.Y + (r.Center().Y-old.Y)*sy
		return physics.ClampRect(core.NewRect(r.X, cy-ph/2, pw, ph), field)
	}
	g.player = rescale(g.player)
	g.cpu = rescale(g.cpu)
	g.player.X, g.cpu.X = g.paddleXs(pw)

	g.ball.Pos = core.Vec{
		X: field.X + (g.ball.Pos.X-old.X)*sx,
		Y: field.Y + (g.ball.Pos.Y-old.Y)*sy,
	}
	g.ball.Vel = g.ball.Vel.Scale(sx)
	g.ball.Radius = g.ballRadius()
	physics.ClampInside(&g.ball, field)
}

// Init resets scores and serves toward a random side.
func (g *Game) Init(rng core.Rand) {
	if rng != nil {
		g.rng = rng
	}
	g.playerScore = 0
	g.cpuScore = 0
	g.over = false
	g.hits = 0
	if !g.field.Empty() {
		pw, ph := g.paddleSize()
		g.placePaddles(pw, ph)
	}
	receiver := SidePlayer
	if g.rng.Intn(2) == 1 {
		receiver = SideCPU
	}
	g.serve(receiver)
	g.placed = g.field
}

func (g *Game) paddleSize() (w, h float64) {
	return math.Max(g.cfg.Paddle.Width*g.field.W, 1e-6), g.cfg.Paddle.Height * g.field.H
}

func (g *Game) paddleXs(pw float64) (left, right float64) {
	off := g.cfg.Paddle.Offset * g.field.W
	return g.field.X + off, g.field.Right() - off - pw
}

func (g *Game) placePaddles(pw, ph float64) {
	left, right := g.paddleXs(pw)
	cy := g.field.Center().Y - ph/2
	g.player = core.NewRect(left, cy, pw, ph)
	g.cpu = core.NewRect(right, cy, pw, ph)
}

func (g *Game) ballRadius() float64 {
	return g.cfg.Ball.Radius * math.Min(g.field.W, g.field.H)
}

func (g *Game) centerBall() {
	g.ball.Pos = g.field.Center()
	g.ball.Radius = g.ballRadius()
}

// serve centers the ball and picks the direction it will leave in once
// serveDelay has passed. The ball rests until then.
func (g *Game) serve(receiver Side) {
	g.serving = true
	g.serveTimer = serveDelay
	g.hits = 0
	g.centerBall()
	g.ball.Vel = core.Vec{}

	g.serveH = 1
	if receiver == SidePlayer {
		g.serveH = -1
	}
	g.serveV = 1
	if g.rng.Intn(2) == 0 {
		g.serveV = -1
	}
	g.serveRel = g.rng.Float64()
}

// launch puts a pending serve in motion.
func (g *Game) launch() {
	g.serving = false
	g.ball.Vel = physics.ShapeBounce(g.serveSpeed(), g.serveRel,
		g.cfg.Bounce.Min, g.cfg.Bounce.Max, g.serveH, g.serveV)
}

func (g *Game) serveSpeed() float64 {
	return g.cfg.Ball.Speed * g.field.W
}

func (g *Game) maxSpeed() float64 {
	return g.cfg.Ball.MaxSpeed * g.field.W
}

// CPUSkill returns the CPU skill for a player score: it ramps from MinSkill
// to MaxSkill as the player approaches MaxAt points.
func CPUSkill(cpu config.PongCPU, playerScore int) float64 {
	level := config.DifficultyConfig{MaxAt: cpu.MaxAt}.Level(playerScore)
	return core.Lerp(cpu.MinSkill, cpu.MaxSkill, level)
}

// Update moves the CPU paddle and the ball.
func (g *Game) Update(dt float64) engine.Outcome {
	if g.over {
		return engine.OutcomeGameOver
	}
	g.updateCPU(dt)

	if g.serving {
		g.serveTimer -= dt
		if g.serveTimer > 0 {
			return engine.OutcomeNone
		}
		g.launch()
	}

	physics.Sweep(&g.ball, dt, g.collide)
	if g.over {
		return engine.OutcomeGameOver
	}
	return engine.OutcomeNone
}

// updateCPU follows the ball while it approaches and drifts back to the
// middle otherwise.
func (g *Game) updateCPU(dt float64) {
	speed := CPUSkill(g.cfg.CPU, g.playerScore) * cpuTracking * math.Max(g.ball.Speed(), g.serveSpeed())
	target := g.field.Center().Y
	if g.ball.Vel.X > 0 && !g.serving {
		target = g.ball.Pos.Y
	}
	diff := target - g.cpu.Center().Y
	step := core.ClampF(diff, -speed*dt, speed*dt)
	g.cpu.Y += step
	g.cpu = physics.ClampRect(g.cpu, g.field)
}

// collide runs after every sub-step: walls, player paddle, CPU paddle,
// then the goal lines. It returns false once a point was scored.
func (g *Game) collide(b *physics.Ball) bool {
	if physics.ReflectWalls(b, g.field, physics.WallTop|physics.WallBottom) != 0 {
		b.Vel = physics.EnforceMinHorizontal(b.Vel, physics.MinHorizontalFraction)
	}

	if b.Vel.X < 0 && physics.CircleIntersectsRect(b.Pos, b.Radius, g.player) {
		g.bounce(b, g.player, 1)
		b.Pos.X = g.player.Right() + b.Radius
	} else if b.Vel.X > 0 && physics.CircleIntersectsRect(b.Pos, b.Radius, g.cpu) {
		g.bounce(b, g.cpu, -1)
		b.Pos.X = g.cpu.X - b.Radius
	}

	switch {
	case b.Pos.X-b.Radius <= g.field.X:
		g.point(SideCPU)
		return false
	case b.Pos.X+b.Radius >= g.field.Right():
		g.point(SidePlayer)
		return false
	}
	return true
}

// bounce shapes the outgoing angle from where the ball met the paddle.
func (g *Game) bounce(b *physics.Ball, paddle core.Rect, hSign float64) {
	rel := physics.RelativeOffset(b.Pos.Y, paddle.Center().Y, paddle.H/2)
	vSign := core.Sign(rel)
	if vSign == 0 {
		vSign = core.Sign(b.Vel.Y)
	}
	speed := math.Min(b.Speed()*g.cfg.Ball.SpeedUp, g.maxSpeed())
	b.Vel = physics.ShapeBounce(speed, rel, g.cfg.Bounce.Min, g.cfg.Bounce.Max, hSign, vSign)
	b.Vel = physics.EnforceMinHorizontal(b.Vel, physics.MinHorizontalFraction)
	g.hits++
}

// point awards a point and either ends the match or serves again toward
// the side that conceded.
func (g *Game) point(scorer Side) {
	receiver := SidePlayer
	if scorer == SidePlayer {
		g.playerScore++
		receiver = SideCPU
	} else {
		g.cpuScore++
	}

	win := g.cfg.Gameplay.WinScore
	if g.playerScore >= win || g.cpuScore >= win {
		g.over = true
		g.winner = scorer
	}
	g.serve(receiver)
}

// Handle moves the player paddle. Fire launches a waiting serve.
func (g *Game) Handle(cmd core.Command) engine.Outcome {
	switch cmd.Kind {
	case core.CmdNudge:
		step := g.cfg.Paddle.Nudge * g.field.H
		switch cmd.Dir {
		case core.DirUp:
			g.movePlayer(-step)
		case core.DirDown:
			g.movePlayer(step)
		}
	case core.CmdMoveBy:
		g.movePlayer(cmd.Delta)
	case core.CmdFire:
		if g.serving {
			g.serveTimer = 0
		}
	}
	return engine.OutcomeNone
}

// movePlayer shifts the paddle vertically; the wall truncates the move.
func (g *Game) movePlayer(dy float64) {
	g.player.Y += dy
	g.player = physics.ClampRect(g.player, g.field)
}

// Status returns the player's score.
func (g *Game) Status() engine.Status {
	return engine.Status{Score: g.playerScore}
}
