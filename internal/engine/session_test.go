package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

type stubSnapshot struct{ field core.Rect }

func (s stubSnapshot) Playfield() core.Rect { return s.field }

// stubGame records every call and returns scripted outcomes.
type stubGame struct {
	field    core.Rect
	inits    int
	dts      []float64
	cmds     []core.Command
	score    int
	lives    int
	next     Outcome
	onUpdate func()
}

func (g *stubGame) ID() string             { return "stub" }
func (g *stubGame) Title() string          { return "Stub" }
func (g *stubGame) Layout(field core.Rect) { g.field = field }
func (g *stubGame) Init(core.Rand) {
	g.inits++
	g.score = 0
	g.lives = 3
}

func (g *stubGame) Update(dt float64) Outcome {
	g.dts = append(g.dts, dt)
	if g.onUpdate != nil {
		g.onUpdate()
	}
	o := g.next
	g.next = OutcomeNone
	return o
}

func (g *stubGame) Handle(cmd core.Command) Outcome {
	g.cmds = append(g.cmds, cmd)
	if cmd.Kind == core.CmdFire {
		g.score += 10
	}
	return OutcomeNone
}

func (g *stubGame) Status() Status     { return Status{Score: g.score, Lives: g.lives, Level: 1, Wave: 1} }
func (g *stubGame) Snapshot() Snapshot { return stubSnapshot{field: g.field} }

func newRunningSession(t *testing.T) (*Session, *stubGame) {
	t.Helper()
	g := &stubGame{}
	s := NewSession(g, WithSeed(1))
	s.SetViewport(400, 300)
	s.Start()
	require.Equal(t, PhaseRunning, s.Phase())
	return s, g
}

func TestSessionStartsReady(t *testing.T) {
	g := &stubGame{}
	s := NewSession(g)

	assert.Equal(t, PhaseReady, s.Phase())
	assert.Equal(t, 1, g.inits, "game should be initialized for the Ready screen")

	require.NoError(t, s.Tick(0.016))
	assert.Empty(t, g.dts, "Tick must be a no-op outside Running")

	s.Fire()
	assert.Empty(t, g.cmds, "commands must be ignored outside Running")
}

func TestSessionZeroFieldIsNoOp(t *testing.T) {
	g := &stubGame{}
	s := NewSession(g)
	s.Start()
	require.Equal(t, PhaseRunning, s.Phase())

	require.NoError(t, s.Tick(0.016))
	assert.Empty(t, g.dts, "Tick without a playfield must do nothing")

	s.SetViewport(-10, 200)
	assert.True(t, s.Field().Empty())
	require.NoError(t, s.Tick(0.016))
	assert.Empty(t, g.dts)
}

func TestSessionStartReseeds(t *testing.T) {
	s, g := newRunningSession(t)
	assert.Equal(t, 2, g.inits)

	// Start while running is a no-op
	s.Start()
	assert.Equal(t, 2, g.inits)
	assert.Equal(t, PhaseRunning, s.Phase())
}

func TestSessionPauseResumeIdempotent(t *testing.T) {
	s, g := newRunningSession(t)
	s.Fire()

	var events []Event
	s.OnEvent(func(e Event) { events = append(events, e) })

	s.Pause()
	before := s.Status()
	s.Pause()
	assert.Equal(t, before, s.Status())
	assert.Len(t, events, 1, "second Pause must not emit anything")

	require.NoError(t, s.Tick(0.016))
	assert.Empty(t, g.dts, "paused session must not tick")

	s.Resume()
	running := s.Status()
	s.Resume()
	assert.Equal(t, running, s.Status())
	assert.Len(t, events, 2)
	assert.Equal(t, 2, g.inits, "Resume must not re-seed")
}

func TestSessionTogglePause(t *testing.T) {
	s, _ := newRunningSession(t)
	s.TogglePause()
	assert.Equal(t, PhasePaused, s.Phase())
	s.TogglePause()
	assert.Equal(t, PhaseRunning, s.Phase())
}

func TestSessionClampsDT(t *testing.T) {
	s, g := newRunningSession(t)

	require.NoError(t, s.Tick(1.0))
	require.NoError(t, s.Tick(-0.5))
	require.NoError(t, s.Tick(0.01))

	require.Len(t, g.dts, 3)
	assert.InDelta(t, DefaultMaxDT, g.dts[0], 1e-12)
	assert.Equal(t, 0.0, g.dts[1])
	assert.InDelta(t, 0.01, g.dts[2], 1e-12)
}

func TestSessionRoundLostPauses(t *testing.T) {
	s, g := newRunningSession(t)
	g.next = OutcomeRoundLost
	require.NoError(t, s.Tick(0.016))
	assert.Equal(t, PhasePaused, s.Phase())

	s.StartOrResume()
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, 2, g.inits, "resuming after a lost round keeps entities")
}

func TestSessionGameOverFiresOnce(t *testing.T) {
	s, g := newRunningSession(t)
	s.Fire()
	s.Fire()

	var over []Event
	s.OnEvent(func(e Event) {
		if e.Kind == EventGameOver {
			over = append(over, e)
		}
	})

	g.next = OutcomeGameOver
	require.NoError(t, s.Tick(0.016))
	require.NoError(t, s.Tick(0.016))
	s.Pause()
	s.Resume()
	s.Fire()

	require.Len(t, over, 1)
	assert.Equal(t, 20, over[0].Status.Score)
	assert.Equal(t, "stub", over[0].GameID)
	assert.Equal(t, PhaseGameOver, s.Phase())

	// A new game may end again
	s.Start()
	g.next = OutcomeGameOver
	require.NoError(t, s.Tick(0.016))
	assert.Len(t, over, 2)
}

func TestSessionScoreEvents(t *testing.T) {
	s, _ := newRunningSession(t)

	var scores []int
	s.OnEvent(func(e Event) {
		if e.Kind == EventScoreChanged {
			scores = append(scores, e.Status.Score)
		}
	})

	s.Fire()
	s.Fire()
	s.Nudge(core.DirLeft) // no score change
	assert.Equal(t, []int{10, 20}, scores)

	s.Reset()
	assert.Equal(t, PhaseReady, s.Phase())
	assert.Equal(t, []int{10, 20, 0}, scores)
}

func TestSessionRejectsReentrantTick(t *testing.T) {
	s, g := newRunningSession(t)

	var inner error
	g.onUpdate = func() {
		inner = s.Tick(0.016)
	}
	require.NoError(t, s.Tick(0.016))
	assert.ErrorIs(t, inner, ErrTickInProgress)
	assert.Len(t, g.dts, 1)
}

func TestSessionListenerMayCallLifecycle(t *testing.T) {
	s, g := newRunningSession(t)

	s.OnEvent(func(e Event) {
		if e.Kind == EventScoreChanged {
			s.Pause()
		}
	})
	s.Fire()
	assert.Equal(t, PhasePaused, s.Phase())
	assert.Len(t, g.cmds, 1)
}

func TestLoopMeasuresElapsedTime(t *testing.T) {
	s, g := newRunningSession(t)
	clock := NewManualClock(time.Unix(0, 0))
	loop := NewLoop(s, clock)

	clock.Advance(16 * time.Millisecond)
	require.NoError(t, loop.Step())
	clock.Advance(10 * time.Millisecond)
	require.NoError(t, loop.Step())

	// A long stall is clamped by the session
	clock.Advance(2 * time.Second)
	require.NoError(t, loop.Step())

	// Sync drops the gap entirely
	clock.Advance(5 * time.Second)
	loop.Sync()
	require.NoError(t, loop.Step())

	require.Len(t, g.dts, 4)
	assert.InDelta(t, 0.016, g.dts[0], 1e-9)
	assert.InDelta(t, 0.010, g.dts[1], 1e-9)
	assert.InDelta(t, DefaultMaxDT, g.dts[2], 1e-9)
	assert.Equal(t, 0.0, g.dts[3])
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	s, _ := newRunningSession(t)
	loop := NewLoop(s, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := loop.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
