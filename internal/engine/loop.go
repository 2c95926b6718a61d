package engine

import (
	"context"
	"errors"
	"time"
)

// Loop turns clock readings into session ticks. Each Step measures the
// elapsed time since the previous Step, so the simulation advances by real
// elapsed time regardless of how regularly Step is called.
//
// A Loop is meant to be driven from one goroutine (a ticker, a Bubble Tea
// tick message, or a test).
type Loop struct {
	session *Session
	clock   Clock
	last    time.Time
}

// NewLoop creates a loop for s. A nil clock means SystemClock.
func NewLoop(s *Session, clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		session: s,
		clock:   clock,
		last:    clock.Now(),
	}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Sync forgets the time elapsed since the last Step. Call it after the
// driver itself was suspended so the next Step does not see the gap.
func (l *Loop) Sync() {
	l.last = l.clock.Now()
}

// Step ticks the session with the time elapsed since the previous Step.
func (l *Loop) Step() error {
	now := l.clock.Now()
	dt := now.Sub(l.last).Seconds()
	l.last = now
	if dt < 0 {
		dt = 0
	}
	return l.session.Tick(dt)
}

// Run steps the session every interval until ctx is cancelled.
// Rejected reentrant ticks are skipped.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.Sync()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := l.Step(); err != nil && !errors.Is(err, ErrTickInProgress) {
				return err
			}
		}
	}
}
