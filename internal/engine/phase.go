// Package engine hosts the shared lifecycle of every arcade simulation:
// the four-phase state machine, the Game contract, the Session wrapper
// that serializes ticks and commands, and the tick drivers.
package engine

// Phase is the lifecycle state of a session.
type Phase int

const (
	// PhaseReady is the initial state: playfield laid out, no simulation.
	PhaseReady Phase = iota
	// PhaseRunning means ticks and gameplay commands have effect.
	PhaseRunning
	// PhasePaused freezes the simulation and keeps all entities.
	PhasePaused
	// PhaseGameOver is terminal until Start or Reset.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CanStart reports whether Start re-seeds and runs from this phase.
func (p Phase) CanStart() bool {
	return p == PhaseReady || p == PhaseGameOver
}
