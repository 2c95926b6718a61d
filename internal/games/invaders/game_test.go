package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

const eps = 1e-9

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultInvadersConfig())
	g.Init(core.NewRand(seed))
	g.Layout(core.NewRect(0, 0, 400, 300))
	return g
}

func activeShots(shots []Shot) int {
	n := 0
	for _, s := range shots {
		if s.Active {
			n++
		}
	}
	return n
}

func TestFormationLayout(t *testing.T) {
	g := newGame(t, 1)

	require.Len(t, g.aliens, 50)
	assert.Equal(t, 50, g.Alive())
	assert.Equal(t, 30, g.aliens[0].Points)
	assert.Equal(t, 20, g.aliens[10].Points)
	assert.Equal(t, 10, g.aliens[49].Points)

	minX, maxX, ok := g.extent()
	require.True(t, ok)
	assert.InDelta(t, 200, (minX+maxX)/2, 1e-6, "formation starts centered")
	assert.InDelta(t, 200, g.player.Center().X, eps)
	assert.LessOrEqual(t, g.player.Bottom(), g.field.Bottom())
}

func TestMarchReversesAtWall(t *testing.T) {
	g := newGame(t, 2)

	flips := 0
	dir := g.dir
	for range 500 {
		g.march()
		minX, maxX, _ := g.extent()
		require.GreaterOrEqual(t, minX, g.field.X-eps)
		require.LessOrEqual(t, maxX, g.field.Right()+eps)
		if g.dir != dir {
			flips++
			dir = g.dir
		}
	}
	assert.Greater(t, flips, 1)
	for _, a := range g.aliens {
		assert.InDelta(t, g.aliens[0].Rect.Y+float64(a.Row)*18, a.Rect.Y, 1e-6, "march is horizontal only")
	}
}

func TestFewerEnemiesPaceFaster(t *testing.T) {
	g := newGame(t, 3)
	step50, volley50 := g.StepInterval(), g.VolleyInterval()

	for i := range 45 {
		g.aliens[i].Alive = false
	}
	require.Equal(t, 5, g.Alive())

	assert.Less(t, g.StepInterval(), step50)
	assert.Less(t, g.VolleyInterval(), volley50)
}

func TestPacingFunctions(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f, fire := cfg.Formation, cfg.Fire

	assert.InDelta(t, f.SlowInterval, StepInterval(f, 1, 1), eps)
	assert.InDelta(t, f.FastInterval, StepInterval(f, 0, 1), eps)
	assert.InDelta(t, f.SlowInterval*f.WaveFactor, StepInterval(f, 1, 2), eps)
	assert.InDelta(t, fire.MaxDelay, VolleyInterval(fire, f.WaveFactor, 1, 1), eps)
	assert.InDelta(t, fire.MinDelay*f.WaveFactor*f.WaveFactor, VolleyInterval(fire, f.WaveFactor, 0, 3), eps)
	assert.Equal(t, fire.MaxShots, MaxShots(fire, 1))
	assert.Equal(t, fire.MinShots, MaxShots(fire, 0))
	assert.InDelta(t, 0.1, Fraction(5, 50), eps)
	assert.Zero(t, Fraction(0, 0))
}

func TestFireCooldown(t *testing.T) {
	g := newGame(t, 4)

	g.Handle(core.Simple(core.CmdFire))
	g.Handle(core.Simple(core.CmdFire))
	assert.Equal(t, 1, activeShots(g.playerShots[:]), "second shot blocked by cooldown")

	g.Update(0.5)
	g.Handle(core.Simple(core.CmdFire))
	assert.Equal(t, 2, activeShots(g.playerShots[:]))
}

func TestShotKillsAlienAndScores(t *testing.T) {
	g := newGame(t, 5)
	target := g.aliens[0].Rect
	g.playerShots[0] = Shot{Rect: core.RectAround(target.Center(), 2, 4), Vel: -100, Active: true}

	g.hitAliens()

	assert.False(t, g.aliens[0].Alive)
	assert.False(t, g.playerShots[0].Active)
	assert.Equal(t, 30, g.score)
	assert.Equal(t, 49, g.Alive())
}

func TestClearingWaveStartsNext(t *testing.T) {
	g := newGame(t, 6)
	for i := range 49 {
		g.aliens[i].Alive = false
	}
	last := g.aliens[49].Rect
	g.playerShots[0] = Shot{Rect: core.RectAround(last.Center(), 2, 4), Vel: -100, Active: true}

	out := g.Update(0.001)

	assert.Equal(t, engine.OutcomeNone, out)
	assert.Equal(t, 2, g.wave)
	assert.Equal(t, 10, g.score)
	assert.Equal(t, 50, g.Alive())
	assert.Zero(t, activeShots(g.playerShots[:]))
}

func TestShooterIsLowestInNearestColumn(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Fire.ForwardBias = 1
	g := New(cfg)
	g.Init(core.NewRand(7))
	g.Layout(core.NewRect(0, 0, 400, 300))
	g.Handle(core.MoveBy(-100))

	idx, ok := g.pickShooter()
	require.True(t, ok)
	assert.Equal(t, 41, idx, "row 4, column 1")

	g.aliens[41].Alive = false
	idx, _ = g.pickShooter()
	assert.Equal(t, 31, idx)

	g.volley()
	require.Equal(t, 1, activeShots(g.enemyShots))
	assert.InDelta(t, g.aliens[31].Rect.Center().X, g.enemyShots[0].Rect.Center().X, eps)
	assert.Greater(t, g.enemyShots[0].Vel, 0.0)
}

func TestVolleyRespectsMaxShots(t *testing.T) {
	g := newGame(t, 8)
	for range 20 {
		g.volley()
	}
	assert.Equal(t, MaxShots(g.cfg.Fire, 1), activeShots(g.enemyShots))
}

func TestFullArenaRetriesVolleyNextTick(t *testing.T) {
	g := newGame(t, 12)
	limit := MaxShots(g.cfg.Fire, 1)
	for i := range limit {
		g.enemyShots[i] = Shot{Rect: core.NewRect(10, 20, 2, 4), Active: true}
	}
	g.volleyTimer = 0.01

	g.Update(0.02)
	assert.Equal(t, limit, activeShots(g.enemyShots))
	assert.Zero(t, g.volleyTimer, "volley stays due while the arena is full")

	g.enemyShots[0].Active = false
	g.Update(0.001)
	assert.Equal(t, limit, activeShots(g.enemyShots), "freed slot is used on the next tick")
	assert.Greater(t, g.volleyTimer, 0.0)
}

func TestPickShooterDoesNotAllocate(t *testing.T) {
	g := newGame(t, 13)
	g.aliens[45].Alive = false
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = g.pickShooter()
	})
	assert.Zero(t, allocs)
}

func TestEnemyHitCostsLife(t *testing.T) {
	g := newGame(t, 9)
	g.Handle(core.MoveBy(-120))
	g.playerShots[1] = Shot{Rect: core.NewRect(10, 150, 2, 4), Vel: -100, Active: true}
	g.enemyShots[0] = Shot{Rect: g.player, Vel: 10, Active: true}

	out := g.Update(0.001)

	assert.Equal(t, engine.OutcomeRoundLost, out)
	assert.Equal(t, 2, g.lives)
	assert.Zero(t, activeShots(g.playerShots[:]))
	assert.Zero(t, activeShots(g.enemyShots))
	assert.InDelta(t, 200, g.player.Center().X, eps, "ship recentered")
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newGame(t, 10)
	g.lives = 1
	g.enemyShots[0] = Shot{Rect: g.player, Vel: 10, Active: true}

	assert.Equal(t, engine.OutcomeGameOver, g.Update(0.001))
	assert.Zero(t, g.lives)
}

func TestLayoutScalesFormation(t *testing.T) {
	g := newGame(t, 11)
	g.march()
	before := g.aliens[0].Rect

	g.Layout(core.NewRect(0, 0, 800, 600))

	assert.InDelta(t, before.X*2, g.aliens[0].Rect.X, 1e-6)
	assert.InDelta(t, before.Y*2, g.aliens[0].Rect.Y, 1e-6)
	assert.InDelta(t, 400, g.player.Center().X, 1e-6)
}

func TestLayoutRescalesAcrossZeroField(t *testing.T) {
	g := newGame(t, 11)
	g.march()
	g.Handle(core.MoveBy(-100))
	before := g.aliens[0].Rect
	player := g.player.Center().X

	g.Layout(core.Rect{})
	g.Layout(core.NewRect(0, 0, 800, 600))

	assert.InDelta(t, before.X*2, g.aliens[0].Rect.X, 1e-6)
	assert.InDelta(t, before.Y*2, g.aliens[0].Rect.Y, 1e-6)
	assert.InDelta(t, player*2, g.player.Center().X, 1e-6)
}

func TestEntitiesStayInsideAndScoreGrows(t *testing.T) {
	g := newGame(t, 12)
	rng := core.NewRand(13)
	prev := 0
	for i := 0; i < 10_000; i++ {
		switch rng.Intn(4) {
		case 0:
			g.Handle(core.Nudge(core.DirLeft))
		case 1:
			g.Handle(core.Nudge(core.DirRight))
		default:
			g.Handle(core.Simple(core.CmdFire))
		}
		if g.Update(0.033) == engine.OutcomeGameOver {
			g.Init(core.NewRand(int64(i)))
			prev = 0
		}

		require.GreaterOrEqual(t, g.player.X, g.field.X-eps)
		require.LessOrEqual(t, g.player.Right(), g.field.Right()+eps)
		minX, maxX, ok := g.extent()
		require.True(t, ok)
		require.GreaterOrEqual(t, minX, g.field.X-eps)
		require.LessOrEqual(t, maxX, g.field.Right()+eps)
		for _, s := range append(g.playerShots[:], g.enemyShots...) {
			if s.Active {
				require.GreaterOrEqual(t, s.Rect.Y, g.field.Y-eps)
				require.LessOrEqual(t, s.Rect.Bottom(), g.field.Bottom()+eps)
			}
		}
		require.GreaterOrEqual(t, g.score, prev)
		require.GreaterOrEqual(t, g.wave, 1)
		prev = g.score
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, 777)
		for i := 0; i < 900; i++ {
			switch i % 5 {
			case 0, 1:
				g.Handle(core.Nudge(core.DirLeft))
			case 2:
				g.Handle(core.Simple(core.CmdFire))
			default:
				g.Handle(core.Nudge(core.DirRight))
			}
			if g.Update(0.016) == engine.OutcomeGameOver {
				break
			}
		}
		return g.Snapshot().(Snapshot)
	}

	s1, s2 := run(), run()
	assert.Equal(t, s1, s2)
}
