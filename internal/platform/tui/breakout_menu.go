package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/games/breakout"
)

// BreakoutLayoutModel lets users pick the layout a brick breaker run
// starts from. Later layouts follow in order after each clear.
type BreakoutLayoutModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	chosen   bool
	quitting bool
	back     bool
}

// NewBreakoutLayoutModel creates the layout picker.
func NewBreakoutLayoutModel(width, height int) BreakoutLayoutModel {
	return BreakoutLayoutModel{
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m BreakoutLayoutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BreakoutLayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m BreakoutLayoutModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuActionFor(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < breakout.LayoutCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the layout list.
func (m BreakoutLayoutModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("B R E A K O U T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Start from layout:", m.width))
	b.WriteString("\n\n")

	for i := range breakout.LayoutCount() {
		l := breakout.LayoutAt(i)
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %-14s %3d bricks", cursor, i+1, l.Name, breakout.CountAlive(l.Arena()))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen layout index, or -1 while choosing.
func (m BreakoutLayoutModel) Selected() int {
	if !m.chosen {
		return -1
	}
	return m.cursor
}

// IsQuitting returns true if user wants to quit.
func (m BreakoutLayoutModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BreakoutLayoutModel) WantsBack() bool {
	return m.back
}

// NewBreakoutAt creates a brick breaker starting from the given layout.
func NewBreakoutAt(layout int) *breakout.Game {
	cfg := config.Breakout()
	cfg.Gameplay.StartLevel = layout
	return breakout.New(cfg)
}

// RunBreakoutLayoutSelector runs the picker. ok is false when the user
// backed out or quit.
func RunBreakoutLayoutSelector(cfg core.RuntimeConfig) (layout int, ok bool, err error) {
	p := tea.NewProgram(NewBreakoutLayoutModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isModel := finalModel.(BreakoutLayoutModel)
	if !isModel || m.Selected() < 0 {
		return 0, false, nil
	}
	return m.Selected(), true, nil
}
