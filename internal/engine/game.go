package engine

import "github.com/vovakirdan/arcade-engine/internal/core"

// Outcome is what a tick or a command reports back to the lifecycle.
type Outcome int

const (
	// OutcomeNone keeps the current phase.
	OutcomeNone Outcome = iota
	// OutcomeRoundLost pauses the session; a life remains.
	OutcomeRoundLost
	// OutcomeGameOver ends the session.
	OutcomeGameOver
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRoundLost:
		return "RoundLost"
	case OutcomeGameOver:
		return "GameOver"
	default:
		return "None"
	}
}

// Status is the small set of counters a HUD shows.
// Games fill everything except Phase, which the session owns.
type Status struct {
	Phase Phase
	Score int
	Lives int
	Level int
	Wave  int
}

// Snapshot is a read-only copy of a game's entity geometry.
// Each game returns its own concrete type; renderers type-switch on it.
type Snapshot interface {
	// Playfield returns the rectangle the entities live in.
	Playfield() core.Rect
}

// Game is the contract every simulation implements.
// A Game is never used concurrently: the Session serializes all calls.
type Game interface {
	// ID returns a unique identifier (e.g. "pong", "snake").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Layout receives a canvas-size notification. Size-derived quantities
	// are recomputed and existing entities are kept inside the new field.
	// A field without positive area must not cause a division by zero.
	Layout(field core.Rect)

	// Init creates fresh entities and zeroes the score. The session calls
	// it on Start from Ready/GameOver and on Reset.
	Init(rng core.Rand)

	// Update advances the simulation by dt seconds. Only called while the
	// session is running and the field has positive area.
	Update(dt float64) Outcome

	// Handle applies one gameplay command. Only called while running.
	Handle(cmd core.Command) Outcome

	// Status returns the current counters.
	Status() Status

	// Snapshot returns a deep copy of the entity model for rendering.
	Snapshot() Snapshot
}
