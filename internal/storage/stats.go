package storage

import (
	"fmt"
	"time"
)

// GameStats aggregates the stored runs of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestWave   int
	LastPlayed time.Time
}

const statsQuery = `SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(wave), MAX(created_at)
	FROM scores %s GROUP BY game_id`

// GetGameStats returns the aggregates of one game. A game without runs
// yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	all, err := s.stats("WHERE game_id = ?", gameID)
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats returns the aggregates of every game with stored runs,
// keyed by game ID.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	return s.stats("")
}

func (s *Store) stats(where string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query(fmt.Sprintf(statsQuery, where), args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st   GameStats
			last any
		)
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &st.BestWave, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(last)
		out[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
