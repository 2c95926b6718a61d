package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

func TestOverviewRows(t *testing.T) {
	games := []registry.GameInfo{{ID: "pong", Title: "Pong"}, {ID: "invaders", Title: "Space Invaders"}}
	played := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	stats := map[string]*storage.GameStats{
		"invaders": {GameID: "invaders", GamesCount: 2, HighScore: 300, AvgScore: 200, BestWave: 4, LastPlayed: played},
	}

	rows := overviewRows(games, stats)
	require.Len(t, rows, 2)
	assert.Equal(t, table.Row{"Pong", "0", "-", "-", "-", "never"}, rows[0])
	assert.Equal(t, table.Row{"Space Invaders", "2", "300", "200", "4", "Mar 04 05:06"}, rows[1])
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.ScoreEntry{{Score: 90, Wave: 0}, {Score: 40, Wave: 2}})
	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "-", rows[0][2])
	assert.Equal(t, "2", rows[1][2])
}

func TestScoreboardTabsCycle(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	tabs := len(m.games) + 1
	require.Greater(t, tabs, 1)

	right := tea.KeyMsg{Type: tea.KeyRight}
	for range tabs {
		next, _ := m.Update(right)
		m = next.(ScoreboardModel)
	}
	assert.Zero(t, m.tab, "cycling through every tab returns to the overview")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	assert.Equal(t, tabs-1, m.tab)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestScoreboardOverviewFromStore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := NewScoreboardModel(store, 120, 30)
	require.NoError(t, m.err)
	assert.Len(t, m.table.Rows(), len(m.games))
	assert.Contains(t, m.View(), "All games")
}
