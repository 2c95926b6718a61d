package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionModelMenuGameMenu(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, 0.033, log.New(io.Discard))

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.game, "enter opens the highlighted game")
	assert.Contains(t, m.View(), "READY")

	m, cmd := sessionUpdate(t, m, runeKey('b'))
	assert.Nil(t, m.game, "b on the ready screen returns to the menu")
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "A R C A D E")

	m, cmd = sessionUpdate(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionModelTracksResize(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), 0.033, log.New(io.Discard))
	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 132, Height: 43})
	assert.Equal(t, 132, m.rt.ScreenW)
	assert.Equal(t, 132, m.menu.Config().ScreenW)
}
