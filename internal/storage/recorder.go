package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// ScoreSaver persists the final score of a run.
type ScoreSaver interface {
	SaveScore(gameID string, runID uuid.UUID, score, wave int) (int64, error)
}

// Recorder stores a session's final score when it reaches GameOver.
// Every Start opens a new run with a fresh run ID, so each run is saved
// at most once.
type Recorder struct {
	saver  ScoreSaver
	logger *log.Logger

	mu    sync.Mutex
	runID uuid.UUID
	saved bool
	last  *ScoreEntry
	err   error
}

// NewRecorder creates a recorder. A nil logger discards output.
func NewRecorder(saver ScoreSaver, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{saver: saver, logger: logger, runID: uuid.New()}
}

// Attach subscribes the recorder to a session.
func (r *Recorder) Attach(s *engine.Session) {
	s.OnEvent(r.Listen)
}

// Listen handles one session event.
func (r *Recorder) Listen(e engine.Event) {
	switch e.Kind {
	case engine.EventPhaseChanged:
		if e.To == engine.PhaseRunning && e.From.CanStart() {
			r.newRun()
		}
	case engine.EventGameOver:
		r.record(e)
	}
}

func (r *Recorder) newRun() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runID = uuid.New()
	r.saved = false
}

func (r *Recorder) record(e engine.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved || r.saver == nil {
		return
	}
	r.saved = true

	id, err := r.saver.SaveScore(e.GameID, r.runID, e.Status.Score, e.Status.Wave)
	if err != nil {
		r.err = err
		r.logger.Error("save score", "game", e.GameID, "run", r.runID, "err", err)
		return
	}
	r.err = nil
	r.last = &ScoreEntry{
		ID:     id,
		GameID: e.GameID,
		RunID:  r.runID,
		Score:  e.Status.Score,
		Wave:   e.Status.Wave,
	}
	r.logger.Info("score saved", "game", e.GameID, "run", r.runID, "score", e.Status.Score)
}

// RunID returns the identifier of the current run.
func (r *Recorder) RunID() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runID
}

// Last returns the most recently saved entry, or nil.
func (r *Recorder) Last() *ScoreEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Err returns the error of the last save attempt.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
