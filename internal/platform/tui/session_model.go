package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// SessionModel chains menu and games inside one Bubble Tea program, the
// way an SSH connection needs them: menu, game, back to the menu.
type SessionModel struct {
	store    *storage.Store
	rt       core.RuntimeConfig
	maxDT    float64
	logger   *log.Logger
	menu     MenuModel
	game     *GameModel
	quitting bool
}

// NewSessionModel starts at the menu. store may be nil.
func NewSessionModel(store *storage.Store, rt core.RuntimeConfig, maxDT float64, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		rt:     rt,
		maxDT:  maxDT,
		logger: logger,
		menu:   NewMenuModel(store, rt),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd { return m.menu.Init() }

// Update implements tea.Model. The children's tea.Quit only ends the
// child; the program ends when the user quits.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW, m.rt.ScreenH = ws.Width, ws.Height
	}
	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, _ := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		// No nested scoreboard program over SSH: reopening the menu
		// refreshes its best scores.
		m.menu = NewMenuModel(m.store, m.rt)

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		game, err := registry.Create(id)
		if err != nil {
			m.logger.Error("create game", "game", id, "err", err)
			m.menu = NewMenuModel(m.store, m.rt)
			return m, nil
		}
		rt := m.rt
		rt.Seed = time.Now().UnixNano()
		gm := NewGameModel(game, Options{
			Runtime: rt,
			MaxDT:   m.maxDT,
			Store:   m.store,
			Logger:  m.logger.With("game", id),
		})
		m.game = &gm
		m.logger.Info("game started", "game", id, "seed", rt.Seed)
		return m, gm.Init()
	}
	return m, nil
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.game = nil
		m.menu = NewMenuModel(m.store, m.rt)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	}
	return m.menu.View()
}
