package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// defaultLimit applies when a query asks for a non-positive number of rows.
const defaultLimit = 10

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	RunID     uuid.UUID
	Score     int
	Wave      int
	CreatedAt time.Time
}

// SaveScore stores the final score of a run and returns the row id.
// A runID is stored at most once.
func (s *Store) SaveScore(gameID string, runID uuid.UUID, score, wave int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, run_id, score, wave) VALUES (?, ?, ?, ?)",
		gameID, runID.String(), score, wave,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best runs of a game, highest first. Equal scores
// keep the order they were stored in.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.queryEntries("ORDER BY score DESC, id ASC", gameID, limit)
}

// RecentScores returns the latest runs of a game, newest first.
func (s *Store) RecentScores(gameID string, limit int) ([]ScoreEntry, error) {
	return s.queryEntries("ORDER BY id DESC", gameID, limit)
}

func (s *Store) queryEntries(order, gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.Query(
		"SELECT id, game_id, run_id, score, wave, created_at FROM scores WHERE game_id = ? "+order+" LIMIT ?",
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (ScoreEntry, error) {
	var (
		e         ScoreEntry
		runID     string
		createdAt any
	)
	if err := rows.Scan(&e.ID, &e.GameID, &runID, &e.Score, &e.Wave, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	id, err := uuid.Parse(runID)
	if err != nil {
		return e, fmt.Errorf("storage: bad run id %q: %w", runID, err)
	}
	e.RunID = id
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// HighScore returns the best score of a game, or 0 when none is stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var high sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&high); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(high.Int64), nil
}

// ClearScores deletes every run of a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime accepts the driver's time.Time as well as SQLite's text form,
// which aggregates return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
