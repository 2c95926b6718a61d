package engine

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// DefaultMaxDT caps a single tick so a stalled driver cannot make the ball
// skip across thin geometry.
const DefaultMaxDT = 0.033

// ErrTickInProgress is returned by Tick when another tick of the same session
// has not finished yet.
var ErrTickInProgress = errors.New("engine: tick already in progress")

// Option configures a Session.
type Option func(*Session)

// WithSeed seeds the session's random source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = core.NewRand(seed)
	}
}

// WithRand injects a random source.
func WithRand(r core.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithMaxDT overrides the per-tick dt cap. Non-positive values are ignored.
func WithMaxDT(maxDT float64) Option {
	return func(s *Session) {
		if maxDT > 0 {
			s.maxDT = maxDT
		}
	}
}

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session owns one game instance and its lifecycle phase.
//
// Every tick and every command runs under one mutex, so input may arrive on
// a different goroutine than the driver. Ticks are additionally guarded by a
// busy flag: a tick issued while another one is executing (for example from
// an event listener) is rejected with ErrTickInProgress. Listeners run after
// the mutex is released.
type Session struct {
	mu        sync.Mutex
	busy      atomic.Bool
	game      Game
	phase     Phase
	field     core.Rect
	rng       core.Rand
	maxDT     float64
	last      Status
	listeners []Listener
	logger    *log.Logger
}

// NewSession wraps a game in a session in the Ready phase. The game is
// initialized immediately so a renderer has entities to draw.
func NewSession(g Game, opts ...Option) *Session {
	s := &Session{
		game:   g,
		phase:  PhaseReady,
		maxDT:  DefaultMaxDT,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = core.NewRand(0)
	}

	g.Init(s.rng)
	s.last = s.statusLocked()
	return s
}

// OnEvent registers a listener. Events are only computed for delivery
// while at least one listener is registered.
func (s *Session) OnEvent(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// GameID returns the hosted game's identifier.
func (s *Session) GameID() string {
	return s.game.ID()
}

// Title returns the hosted game's display name.
func (s *Session) Title() string {
	return s.game.Title()
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Status returns the current counters including the phase.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

// Snapshot returns the game's render snapshot. It never advances the
// simulation.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Field returns the current playfield.
func (s *Session) Field() core.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field
}

// SetViewport notifies the session of a new canvas size. Non-positive
// sizes leave the session without a usable playfield, which turns Tick into
// a no-op.
func (s *Session) SetViewport(width, height float64) {
	s.mu.Lock()
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	s.field = core.NewRect(0, 0, width, height)
	s.game.Layout(s.field)
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
}

// Start begins a fresh game from Ready or GameOver. It is a no-op in any
// other phase.
func (s *Session) Start() {
	s.mu.Lock()
	if s.phase.CanStart() {
		s.game.Init(s.rng)
		s.setPhaseLocked(PhaseRunning)
	}
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
}

// Resume continues a paused game without re-seeding. Resuming a running
// session is a no-op.
func (s *Session) Resume() {
	s.mu.Lock()
	if s.phase == PhasePaused {
		s.setPhaseLocked(PhaseRunning)
	}
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
}

// StartOrResume starts from Ready/GameOver or resumes from Paused.
func (s *Session) StartOrResume() {
	switch s.Phase() {
	case PhasePaused:
		s.Resume()
	case PhaseReady, PhaseGameOver:
		s.Start()
	}
}

// Pause freezes a running game. Pausing a paused session is a no-op.
func (s *Session) Pause() {
	s.mu.Lock()
	if s.phase == PhaseRunning {
		s.setPhaseLocked(PhasePaused)
	}
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.Phase() {
	case PhaseRunning:
		s.Pause()
	case PhasePaused:
		s.Resume()
	}
}

// Reset discards the current game and returns to Ready from any phase.
func (s *Session) Reset() {
	s.mu.Lock()
	s.game.Init(s.rng)
	s.setPhaseLocked(PhaseReady)
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
}

// Ready is an alias for Reset.
func (s *Session) Ready() {
	s.Reset()
}

// Tick advances the simulation by dt seconds. dt is clamped into
// [0, maxDT]. Outside Running, or without a playfield, Tick does nothing.
func (s *Session) Tick(dt float64) error {
	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Debug("rejected reentrant tick", "game", s.game.ID())
		return ErrTickInProgress
	}
	defer s.busy.Store(false)

	s.mu.Lock()
	if s.phase != PhaseRunning || s.field.Empty() {
		s.mu.Unlock()
		return nil
	}
	dt = core.ClampF(dt, 0, s.maxDT)
	s.applyLocked(s.game.Update(dt))
	events := s.commitLocked()
	s.mu.Unlock()

	s.dispatch(events)
	return nil
}

// Handle applies a gameplay command. Commands are ignored unless the
// session is running with a usable playfield.
func (s *Session) Handle(cmd core.Command) {
	s.mu.Lock()
	if s.phase != PhaseRunning || s.field.Empty() {
		s.mu.Unlock()
		return
	}
	s.applyLocked(s.game.Handle(cmd))
	events := s.commitLocked()
	s.mu.Unlock()
	s.dispatch(events)
}

// Nudge sends a discrete directional command.
func (s *Session) Nudge(d core.Direction) { s.Handle(core.Nudge(d)) }

// MoveBy sends a continuous drag delta.
func (s *Session) MoveBy(delta float64) { s.Handle(core.MoveBy(delta)) }

// Fire sends a fire command.
func (s *Session) Fire() { s.Handle(core.Simple(core.CmdFire)) }

// Rotate sends a rotate command.
func (s *Session) Rotate() { s.Handle(core.Simple(core.CmdRotate)) }

// Drop sends a drop command.
func (s *Session) Drop() { s.Handle(core.Simple(core.CmdDrop)) }

// TurnLeft sends a relative left turn.
func (s *Session) TurnLeft() { s.Handle(core.Simple(core.CmdTurnLeft)) }

// TurnRight sends a relative right turn.
func (s *Session) TurnRight() { s.Handle(core.Simple(core.CmdTurnRight)) }

// Move sends a board swipe.
func (s *Session) Move(d core.Direction) { s.Handle(core.Move(d)) }

func (s *Session) applyLocked(o Outcome) {
	switch o {
	case OutcomeRoundLost:
		s.setPhaseLocked(PhasePaused)
	case OutcomeGameOver:
		s.setPhaseLocked(PhaseGameOver)
	}
}

func (s *Session) setPhaseLocked(p Phase) {
	if s.phase == p {
		return
	}
	s.logger.Debug("phase change", "game", s.game.ID(), "from", s.phase, "to", p)
	s.phase = p
}

func (s *Session) statusLocked() Status {
	st := s.game.Status()
	st.Phase = s.phase
	return st
}

// commitLocked records the current status and returns the events implied
// by the change, or nil when nobody listens.
func (s *Session) commitLocked() []Event {
	next := s.statusLocked()
	prev := s.last
	s.last = next
	if len(s.listeners) == 0 {
		return nil
	}
	events := diffEvents(s.game.ID(), prev, next)
	if len(events) == 0 {
		return nil
	}
	return events
}

func (s *Session) dispatch(events []Event) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, e := range events {
		for _, l := range listeners {
			l(e)
		}
	}
}
