package breakout

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/physics"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

// Game implements the brick breaker. Positions are playfield units.
type Game struct {
	cfg    config.BreakoutConfig
	rng    core.Rand
	field  core.Rect
	placed core.Rect // field the entities were last laid out in

	layoutIndex int
	layout      *Layout
	bricks      []Brick

	paddle   core.Rect
	ball     physics.Ball
	attached bool // Ball rests on the paddle until the next running tick

	speedMul float64
	score    int
	lives    int
	level    int
}

func init() {
	registry.Register("breakout", func() engine.Game {
		return New(config.Breakout())
	})
}

// New creates a brick breaker game.
func New(cfg config.BreakoutConfig) *Game {
	def := config.DefaultBreakoutConfig()
	if cfg.Gameplay.Lives <= 0 {
		cfg.Gameplay.Lives = def.Gameplay.Lives
	}
	if cfg.Ball.Speed <= 0 {
		cfg.Ball.Speed = def.Ball.Speed
	}
	cfg.Ball.MaxMultiplier = max(cfg.Ball.MaxMultiplier, 1)
	if cfg.Bounce.Max < cfg.Bounce.Min {
		cfg.Bounce = def.Bounce
	}
	if cfg.Bricks.RowPoints <= 0 {
		cfg.Bricks.RowPoints = def.Bricks.RowPoints
	}
	return &Game{cfg: cfg, rng: core.NewRand(0), speedMul: 1}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Init starts a new game on the configured layout.
func (g *Game) Init(rng core.Rand) {
	if rng != nil {
		g.rng = rng
	}
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.layoutIndex = max(g.cfg.Gameplay.StartLevel, 0)
	g.level = 1
	g.loadLayout()
	if !g.field.Empty() {
		g.placePaddle()
		g.attachBall()
	}
	g.placed = g.field
}

// loadLayout builds the brick arena for the current layout index.
func (g *Game) loadLayout() {
	g.layout = LayoutAt(g.layoutIndex)
	g.bricks = g.layout.Arena()
	g.speedMul = 1
	g.placeBricks()
}

// Layout resizes the playfield. The paddle and ball keep their relative
// positions; bricks are laid out again.
func (g *Game) Layout(field core.Rect) {
	old := g.placed
	g.field = field
	if field.Empty() {
		return
	}
	g.placed = field
	g.placeBricks()

	if old.Empty() {
		g.placePaddle()
		g.attachBall()
		return
	}

	sx, sy := field.W/old.W, field.H/old.H
	cx := field.X + (g.paddle.Center().X-old.X)*sx
	g.paddle = g.paddleAt(cx)
	g.ball.Pos = core.Vec{
		X: field.X + (g.ball.Pos.X-old.X)*sx,
		Y: field.Y + (g.ball.Pos.Y-old.Y)*sy,
	}
	g.ball.Vel = g.ball.Vel.Scale(sy)
	g.ball.Radius = g.ballRadius()
	if g.attached {
		g.attachBall()
		return
	}
	physics.ClampInside(&g.ball, field)
}

// placeBricks computes brick rectangles from the field size.
func (g *Game) placeBricks() {
	if g.field.Empty() || g.layout == nil || g.layout.Cols == 0 {
		return
	}
	cw := g.field.W / float64(g.layout.Cols)
	rh := g.cfg.Bricks.RowHeight * g.field.H
	top := g.field.Y + g.cfg.Bricks.Top*g.field.H
	gap := math.Min(g.cfg.Bricks.Gap*g.field.W, cw/2)
	for i := range g.bricks {
		b := &g.bricks[i]
		b.Rect = core.NewRect(
			g.field.X+float64(b.Col)*cw+gap/2,
			top+float64(b.Row)*rh+gap/2,
			cw-gap,
			math.Max(rh-gap, 0),
		)
	}
}

// paddleAt returns the paddle rectangle centered at x, kept inside.
func (g *Game) paddleAt(x float64) core.Rect {
	w := g.cfg.Paddle.Width * g.field.W
	h := g.cfg.Paddle.Height * g.field.H
	y := g.field.Bottom() - g.cfg.Paddle.BottomMargin*g.field.H - h
	return physics.ClampRect(core.NewRect(x-w/2, y, w, h), g.field)
}

func (g *Game) placePaddle() {
	g.paddle = g.paddleAt(g.field.Center().X)
}

func (g *Game) ballRadius() float64 {
	return g.cfg.Ball.Radius * math.Min(g.field.W, g.field.H)
}

// attachBall rests the ball just above the paddle center.
func (g *Game) attachBall() {
	g.attached = true
	g.ball.Radius = g.ballRadius()
	g.ball.Vel = core.Vec{}
	g.ball.Pos = core.Vec{X: g.paddle.Center().X, Y: g.paddle.Y - g.ball.Radius}
	physics.ClampInside(&g.ball, g.field)
}

// speed returns the current ball speed in playfield units per second.
func (g *Game) speed() float64 {
	return g.cfg.Ball.Speed * g.field.H * g.speedMul
}

// launch sends the attached ball upward at a random shaped angle.
func (g *Game) launch() {
	g.attached = false
	rel := g.rng.Float64()*2 - 1
	g.ball.Vel = BouncePaddle(core.Vec{X: 1, Y: 0}.Scale(g.speed()), rel, g.cfg.Bounce)
}

// BouncePaddle returns the velocity of a ball leaving the paddle: speed is
// kept, the angle from the horizontal grows from bounce.Min at the center
// to bounce.Max at the edge, and the ball always goes up. The horizontal
// sign follows rel, or the incoming direction for a dead-center hit.
func BouncePaddle(v core.Vec, rel float64, bounce config.BounceAngles) core.Vec {
	hSign := core.Sign(rel)
	if hSign == 0 {
		hSign = core.Sign(v.X)
	}
	out := physics.ShapeBounce(v.Len(), rel, bounce.Min, bounce.Max, hSign, -1)
	return physics.EnforceMinHorizontal(out, physics.MinHorizontalFraction)
}

// SpeedMultiplier returns the multiplier after a number of brick hits.
func SpeedMultiplier(hits int, step, maxMul float64) float64 {
	return math.Min(1+float64(max(hits, 0))*step, maxMul)
}

// Update advances the ball. An attached ball launches first.
func (g *Game) Update(dt float64) engine.Outcome {
	if g.attached {
		g.launch()
	}

	outcome := engine.OutcomeNone
	physics.Sweep(&g.ball, dt, func(b *physics.Ball) bool {
		outcome = g.collide(b)
		return outcome == engine.OutcomeNone
	})
	if outcome != engine.OutcomeNone {
		return outcome
	}

	if CountAlive(g.bricks) == 0 {
		g.nextLayout()
	}
	return engine.OutcomeNone
}

// collide resolves one sub-step: walls, paddle, bricks, then the floor.
func (g *Game) collide(b *physics.Ball) engine.Outcome {
	walls := physics.WallLeft | physics.WallRight | physics.WallTop
	if physics.ReflectWalls(b, g.field, walls) != 0 {
		b.Vel = physics.EnforceMinHorizontal(b.Vel, physics.MinHorizontalFraction)
	}

	if b.Pos.Y <= g.paddle.Bottom() && physics.CircleIntersectsRect(b.Pos, b.Radius, g.paddle) {
		rel := physics.RelativeOffset(b.Pos.X, g.paddle.Center().X, g.paddle.W/2)
		b.Vel = BouncePaddle(b.Vel, rel, g.cfg.Bounce)
		b.Pos.Y = g.paddle.Y - b.Radius
	} else {
		g.collideBricks(b)
		b.Pos.X = core.ClampF(b.Pos.X, g.field.X+b.Radius, g.field.Right()-b.Radius)
	}

	if b.Pos.Y > g.field.Bottom() {
		return g.loseBall()
	}
	return engine.OutcomeNone
}

// collideBricks resolves at most one brick per sub-step.
func (g *Game) collideBricks(b *physics.Ball) {
	for i := range g.bricks {
		br := &g.bricks[i]
		if !br.Alive {
			continue
		}
		if physics.ResolveCircleRect(b, br.Rect) == physics.SideNone {
			continue
		}
		b.Vel = physics.EnforceMinHorizontal(b.Vel, physics.MinHorizontalFraction)
		g.hitBrick(br)
		b.Vel = physics.WithSpeed(b.Vel, g.speed())
		return
	}
}

// hitBrick damages a brick. Every hit on a destructible brick scores its
// weight and speeds the ball up.
func (g *Game) hitBrick(br *Brick) {
	if !br.Destructible() {
		return
	}
	br.HP--
	if br.HP <= 0 {
		br.Alive = false
	}
	g.score += br.Weight * g.cfg.Bricks.RowPoints
	g.speedMul = math.Min(g.speedMul+g.cfg.Ball.SpeedStep, g.cfg.Ball.MaxMultiplier)
}

// loseBall takes a life. With lives left the ball waits on the paddle and
// the round pauses.
func (g *Game) loseBall() engine.Outcome {
	g.lives--
	g.attachBall()
	if g.lives <= 0 {
		g.lives = 0
		return engine.OutcomeGameOver
	}
	return engine.OutcomeRoundLost
}

// nextLayout moves on after the field is cleared.
func (g *Game) nextLayout() {
	g.layoutIndex++
	g.level++
	g.loadLayout()
	g.attachBall()
}

// Handle moves the paddle. An attached ball moves with it.
func (g *Game) Handle(cmd core.Command) engine.Outcome {
	switch cmd.Kind {
	case core.CmdNudge:
		step := g.cfg.Paddle.Nudge * g.field.W
		switch cmd.Dir {
		case core.DirLeft:
			g.movePaddle(-step)
		case core.DirRight:
			g.movePaddle(step)
		}
	case core.CmdMoveBy:
		g.movePaddle(cmd.Delta)
	}
	return engine.OutcomeNone
}

// movePaddle shifts the paddle; the wall truncates the move.
func (g *Game) movePaddle(dx float64) {
	g.paddle.X += dx
	g.paddle = physics.ClampRect(g.paddle, g.field)
	if g.attached {
		g.attachBall()
	}
}

// Status returns the HUD counters.
func (g *Game) Status() engine.Status {
	return engine.Status{
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
	}
}
