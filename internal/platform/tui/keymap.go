package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Action     key.Binding // fire, hard drop
	Rotate     key.Binding
	TurnLeft   key.Binding
	TurnRight  key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Action, k.Start, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Action, k.Rotate, k.TurnLeft, k.TurnRight},
		{k.Start, k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Action:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire/drop")),
		Rotate:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "rotate")),
		TurnLeft:   key.NewBinding(key.WithKeys("z", ","), key.WithHelp("z", "turn left")),
		TurnRight:  key.NewBinding(key.WithKeys("c", "."), key.WithHelp("c", "turn right")),
		Start:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/resume")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Intent is what a key press asks the session to do.
type Intent int

const (
	IntentNone Intent = iota
	IntentCommand
	IntentStart
	IntentPause
	IntentRestart
	IntentBack
	IntentScreenshot
	IntentQuit
)

// InputAdapter translates key messages into session commands. The mapping
// depends on the game: arrows swipe the 2048 board, space hard-drops in
// Tetris and fires everywhere else.
type InputAdapter struct {
	keys   KeyMap
	gameID string
}

// NewInputAdapter creates an adapter for the given game.
func NewInputAdapter(gameID string, keys KeyMap) InputAdapter {
	return InputAdapter{keys: keys, gameID: gameID}
}

// Keys returns the bindings.
func (a InputAdapter) Keys() KeyMap { return a.keys }

// Translate maps a key message. For IntentCommand the command is set.
func (a InputAdapter) Translate(msg tea.KeyMsg) (Intent, core.Command) {
	k := a.keys
	switch {
	case key.Matches(msg, k.Quit):
		return IntentQuit, core.Command{}
	case key.Matches(msg, k.Screenshot):
		return IntentScreenshot, core.Command{}
	case key.Matches(msg, k.Start):
		return IntentStart, core.Command{}
	case key.Matches(msg, k.Pause):
		return IntentPause, core.Command{}
	case key.Matches(msg, k.Restart):
		return IntentRestart, core.Command{}
	case key.Matches(msg, k.Back):
		return IntentBack, core.Command{}
	case key.Matches(msg, k.Action):
		if a.gameID == "tetris" {
			return IntentCommand, core.Simple(core.CmdDrop)
		}
		return IntentCommand, core.Simple(core.CmdFire)
	case key.Matches(msg, k.Rotate):
		return IntentCommand, core.Simple(core.CmdRotate)
	case key.Matches(msg, k.TurnLeft):
		return IntentCommand, core.Simple(core.CmdTurnLeft)
	case key.Matches(msg, k.TurnRight):
		return IntentCommand, core.Simple(core.CmdTurnRight)
	}

	dir := core.DirNone
	switch {
	case key.Matches(msg, k.Up):
		dir = core.DirUp
	case key.Matches(msg, k.Down):
		dir = core.DirDown
	case key.Matches(msg, k.Left):
		dir = core.DirLeft
	case key.Matches(msg, k.Right):
		dir = core.DirRight
	}
	if dir == core.DirNone {
		return IntentNone, core.Command{}
	}
	if a.gameID == "2048" {
		return IntentCommand, core.Move(dir)
	}
	return IntentCommand, core.Nudge(dir)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuKeyMap holds the menu bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Back       key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Scoreboard, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuActionFor translates a key to a menu action.
func (k MenuKeyMap) MenuActionFor(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
