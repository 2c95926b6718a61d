package engine

// EventKind identifies a session notification.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventLivesChanged
	EventWaveChanged
	EventLevelChanged
	EventPhaseChanged
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventLivesChanged:
		return "LivesChanged"
	case EventWaveChanged:
		return "WaveChanged"
	case EventLevelChanged:
		return "LevelChanged"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners after the session lock is released.
// Status carries the counters at the time of the event; for GameOver,
// Status.Score is the final score.
type Event struct {
	Kind   EventKind
	GameID string
	Status Status
	From   Phase // EventPhaseChanged only
	To     Phase // EventPhaseChanged only
}

// Listener receives session events.
type Listener func(Event)

// diffEvents builds the events implied by moving from prev to next.
// GameOver is emitted only on a transition into PhaseGameOver.
func diffEvents(gameID string, prev, next Status) []Event {
	var events []Event
	if next.Score != prev.Score {
		events = append(events, Event{Kind: EventScoreChanged, GameID: gameID, Status: next})
	}
	if next.Lives != prev.Lives {
		events = append(events, Event{Kind: EventLivesChanged, GameID: gameID, Status: next})
	}
	if next.Wave != prev.Wave {
		events = append(events, Event{Kind: EventWaveChanged, GameID: gameID, Status: next})
	}
	if next.Level != prev.Level {
		events = append(events, Event{Kind: EventLevelChanged, GameID: gameID, Status: next})
	}
	if next.Phase != prev.Phase {
		events = append(events, Event{
			Kind:   EventPhaseChanged,
			GameID: gameID,
			Status: next,
			From:   prev.Phase,
			To:     next.Phase,
		})
		if next.Phase == PhaseGameOver {
			events = append(events, Event{Kind: EventGameOver, GameID: gameID, Status: next})
		}
	}
	return events
}
