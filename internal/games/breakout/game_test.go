package breakout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/physics"
)

const eps = 1e-9

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultBreakoutConfig())
	g.Init(core.NewRand(seed))
	g.Layout(core.NewRect(0, 0, 400, 500))
	return g
}

func TestArenaRowWeights(t *testing.T) {
	l := ParseLayout("t", "Test", []string{
		"#H",
		"X5",
		"#.",
	})
	bricks := l.Arena()
	require.Len(t, bricks, 5)

	assert.Equal(t, 3, bricks[0].Weight, "top row weighs most")
	assert.Equal(t, 2, bricks[1].HP)
	assert.Equal(t, BrickSolid, bricks[2].Type)
	assert.Equal(t, 5, bricks[3].Weight, "digits override the row weight")
	assert.Equal(t, 1, bricks[4].Weight)
	assert.Equal(t, 4, CountAlive(bricks), "solid bricks never count")
}

func TestBuiltinLayoutsHaveBricks(t *testing.T) {
	for i := range LayoutCount() {
		l := LayoutAt(i)
		assert.Positive(t, CountAlive(l.Arena()), "layout %s", l.ID)
	}
	assert.Equal(t, LayoutAt(0).ID, LayoutAt(LayoutCount()).ID, "index wraps")
	assert.Equal(t, LayoutAt(LayoutCount()-1).ID, LayoutAt(-1).ID)
	assert.Equal(t, 10, LayoutCount())
}

func TestParseLayouts(t *testing.T) {
	layouts, err := ParseLayouts([]byte(`
- id: a
  rows: ["#.#", "H"]
- id: b
  name: Bee
  rows: ["X9"]
`))
	require.NoError(t, err)
	require.Len(t, layouts, 2)
	assert.Equal(t, "a", layouts[0].Name, "name defaults to the id")
	assert.Equal(t, 3, layouts[0].Cols)
	assert.Equal(t, 2, layouts[0].Rows)
	assert.Equal(t, "Bee", layouts[1].Name)

	for name, doc := range map[string]string{
		"bad char": "- id: a\n  rows: [\"#?\"]",
		"no rows":  "- id: a",
		"no id":    "- rows: [\"#\"]",
		"empty":    "[]",
		"not yaml": "{",
	} {
		_, err := ParseLayouts([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestDeadCenterPaddleHitUsesShallowestAngle(t *testing.T) {
	g := newGame(t, 1)
	g.attached = false
	g.ball.Pos = core.Vec{X: g.paddle.Center().X, Y: g.paddle.Y}
	g.ball.Vel = core.Vec{X: 160, Y: -220}
	speed := g.ball.Speed()

	g.collide(&g.ball)

	assert.Less(t, g.ball.Vel.Y, 0.0)
	assert.InDelta(t, 45, physics.AngleFromHorizontal(g.ball.Vel), 1e-6)
	assert.InDelta(t, speed, g.ball.Speed(), 1e-9)
	assert.Greater(t, g.ball.Vel.X, 0.0, "horizontal sign kept on a dead-center hit")
}

func TestEdgePaddleHitKeepsMinimumHorizontal(t *testing.T) {
	v := BouncePaddle(core.Vec{X: 0, Y: 300}, -1, config.DefaultBreakoutConfig().Bounce)

	assert.Less(t, v.Y, 0.0)
	assert.Less(t, v.X, 0.0, "left edge sends the ball left")
	assert.GreaterOrEqual(t, physics.HorizontalFraction(v), physics.MinHorizontalFraction-eps)
	assert.InDelta(t, 300, v.Len(), 1e-9)
}

func TestBrickHitScoresAndSpeedsUp(t *testing.T) {
	g := newGame(t, 2)
	g.attached = false
	var target *Brick
	for i := range g.bricks {
		if g.bricks[i].Type == BrickNormal {
			target = &g.bricks[i]
			break
		}
	}
	require.NotNil(t, target)
	g.ball.Pos = core.Vec{X: target.Rect.Center().X, Y: target.Rect.Bottom() + g.ball.Radius/2}
	g.ball.Vel = core.Vec{X: 0.8 * g.speed(), Y: -0.6 * g.speed()}

	g.collide(&g.ball)

	assert.False(t, target.Alive)
	assert.Equal(t, target.Weight*g.cfg.Bricks.RowPoints, g.score)
	assert.InDelta(t, 1.02, g.speedMul, eps)
	assert.Greater(t, g.ball.Vel.Y, 0.0, "ball rebounds off the brick's bottom face")
	assert.InDelta(t, g.speed(), g.ball.Speed(), 1e-6)
}

func TestHardBrickNeedsTwoHits(t *testing.T) {
	g := newGame(t, 3)
	b := Brick{Type: BrickHard, HP: 2, Alive: true, Weight: 2}

	g.hitBrick(&b)
	assert.True(t, b.Alive)
	g.hitBrick(&b)
	assert.False(t, b.Alive)
	assert.Equal(t, 2*2*g.cfg.Bricks.RowPoints, g.score)

	solid := Brick{Type: BrickSolid, HP: 1, Alive: true}
	g.hitBrick(&solid)
	assert.True(t, solid.Alive)
}

func TestSpeedMultiplierCapped(t *testing.T) {
	assert.InDelta(t, 1.0, SpeedMultiplier(0, 0.02, 1.6), eps)
	assert.InDelta(t, 1.2, SpeedMultiplier(10, 0.02, 1.6), eps)
	assert.InDelta(t, 1.6, SpeedMultiplier(1000, 0.02, 1.6), eps)
}

func TestLosingBallPausesRound(t *testing.T) {
	g := newGame(t, 4)
	g.attached = false
	g.ball.Pos = core.Vec{X: 10, Y: g.field.Bottom() - 1}
	g.ball.Vel = core.Vec{X: 100, Y: 400}

	out := g.Update(0.033)

	assert.Equal(t, engine.OutcomeRoundLost, out)
	assert.Equal(t, g.cfg.Gameplay.Lives-1, g.lives)
	assert.True(t, g.attached)
	assert.InDelta(t, g.paddle.Y-g.ball.Radius, g.ball.Pos.Y, eps)

	g.Update(0.016)
	assert.False(t, g.attached, "the ball launches on the next running tick")
	assert.Less(t, g.ball.Vel.Y, 0.0)
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newGame(t, 5)
	g.lives = 1
	g.attached = false
	g.ball.Pos = core.Vec{X: 10, Y: g.field.Bottom() - 1}
	g.ball.Vel = core.Vec{X: 100, Y: 400}

	assert.Equal(t, engine.OutcomeGameOver, g.Update(0.033))
	assert.Equal(t, 0, g.Status().Lives)
}

func TestClearingLayoutAdvancesLevel(t *testing.T) {
	g := newGame(t, 6)
	g.speedMul = 1.4
	for i := range g.bricks {
		g.bricks[i].Alive = false
	}

	assert.Equal(t, engine.OutcomeNone, g.Update(0.016))
	assert.Equal(t, 2, g.level)
	assert.Equal(t, LayoutAt(1).ID, g.layout.ID)
	assert.InDelta(t, 1.0, g.speedMul, eps)
	assert.Positive(t, CountAlive(g.bricks))
}

func TestPaddleClampedAndCarriesBall(t *testing.T) {
	g := newGame(t, 7)
	for range 100 {
		g.Handle(core.Nudge(core.DirLeft))
	}
	assert.InDelta(t, 0, g.paddle.X, eps)
	assert.InDelta(t, g.paddle.Center().X, g.ball.Pos.X, eps)

	g.Handle(core.MoveBy(1e6))
	assert.InDelta(t, g.field.Right()-g.paddle.W, g.paddle.X, eps)
}

func TestLayoutScalesEntities(t *testing.T) {
	g := newGame(t, 8)
	g.attached = false
	g.ball.Pos = core.Vec{X: 100, Y: 250}
	g.ball.Vel = core.Vec{X: 150, Y: -150}
	g.paddle = g.paddleAt(300)

	g.Layout(core.NewRect(0, 0, 800, 1000))

	assert.InDelta(t, 200, g.ball.Pos.X, eps)
	assert.InDelta(t, 500, g.ball.Pos.Y, eps)
	assert.InDelta(t, 300, g.ball.Vel.X, eps)
	assert.InDelta(t, 600, g.paddle.Center().X, eps)
	for _, b := range g.bricks {
		assert.LessOrEqual(t, b.Rect.Right(), 800+eps)
	}
}

func TestLayoutRescalesAcrossZeroField(t *testing.T) {
	g := newGame(t, 8)
	g.attached = false
	g.ball.Pos = core.Vec{X: 100, Y: 250}
	g.ball.Vel = core.Vec{X: 150, Y: -150}
	g.paddle = g.paddleAt(300)

	g.Layout(core.Rect{})
	g.Layout(core.NewRect(0, 0, 800, 1000))

	assert.False(t, g.attached, "ball in flight stays in flight")
	assert.InDelta(t, 200, g.ball.Pos.X, eps)
	assert.InDelta(t, 500, g.ball.Pos.Y, eps)
	assert.InDelta(t, 600, g.paddle.Center().X, eps)
}

func TestBallStaysInsideAndScoreGrows(t *testing.T) {
	g := newGame(t, 9)
	rng := core.NewRand(11)
	prev := 0
	for i := 0; i < 20_000; i++ {
		if rng.Intn(2) == 0 {
			// Chase the ball so rallies last.
			g.Handle(core.MoveBy(g.ball.Pos.X - g.paddle.Center().X))
		}
		switch g.Update(0.033) {
		case engine.OutcomeGameOver:
			g.Init(core.NewRand(int64(i)))
			prev = 0
		}

		b := g.ball
		require.GreaterOrEqual(t, b.Pos.X-b.Radius, g.field.X-eps, "tick %d", i)
		require.LessOrEqual(t, b.Pos.X+b.Radius, g.field.Right()+eps, "tick %d", i)
		require.GreaterOrEqual(t, b.Pos.Y-b.Radius, g.field.Y-eps, "tick %d", i)
		require.LessOrEqual(t, b.Pos.Y, g.field.Bottom(), "tick %d", i)
		require.GreaterOrEqual(t, g.score, prev)
		prev = g.score
		if b.Speed() > 0 {
			require.GreaterOrEqual(t, physics.HorizontalFraction(b.Vel), physics.MinHorizontalFraction-1e-9)
			require.LessOrEqual(t, b.Speed(), g.cfg.Ball.Speed*g.field.H*g.cfg.Ball.MaxMultiplier+1e-6)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, 12345)
		for i := 0; i < 600; i++ {
			if i%7 < 3 {
				g.Handle(core.Nudge(core.DirRight))
			} else {
				g.Handle(core.Nudge(core.DirLeft))
			}
			if g.Update(0.016) == engine.OutcomeGameOver {
				break
			}
		}
		return g.Snapshot().(Snapshot)
	}

	s1, s2 := run(), run()
	assert.Equal(t, s1.Score, s2.Score)
	assert.Equal(t, s1.Ball, s2.Ball)
	assert.Equal(t, s1.Remaining, s2.Remaining)
	assert.False(t, math.IsNaN(s1.Ball.Pos.X))
}
