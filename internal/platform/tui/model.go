package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// Options configures a game model.
type Options struct {
	Runtime core.RuntimeConfig
	MaxDT   float64
	Store   *storage.Store
	Logger  *log.Logger
	Clock   engine.Clock // nil means the system clock
	Keys    KeyMap
}

// GameModel drives one engine session from Bubble Tea: ticks step the
// loop, keys become session commands, window sizes become the viewport.
type GameModel struct {
	session    *engine.Session
	loop       *engine.Loop
	input      InputAdapter
	help       help.Model
	screen     *core.Screen
	recorder   *storage.Recorder
	store      *storage.Store
	logger     *log.Logger
	tickRate   int
	gen        int64
	highScore  int
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps game in a session and prepares the terminal canvas.
func NewGameModel(game engine.Game, opts Options) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	sessOpts := []engine.Option{engine.WithSeed(cfg.Seed), engine.WithLogger(logger)}
	if opts.MaxDT > 0 {
		sessOpts = append(sessOpts, engine.WithMaxDT(opts.MaxDT))
	}
	session := engine.NewSession(game, sessOpts...)

	m := GameModel{
		session:  session,
		loop:     engine.NewLoop(session, opts.Clock),
		input:    NewInputAdapter(game.ID(), opts.Keys),
		help:     help.New(),
		screen:   core.NewScreen(0, 0),
		store:    opts.Store,
		logger:   logger,
		tickRate: cfg.TickRate,
		gen:      time.Now().UnixNano(),
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		m.input = NewInputAdapter(game.ID(), DefaultKeyMap())
	}
	if opts.Store != nil {
		m.recorder = storage.NewRecorder(opts.Store, logger)
		m.recorder.Attach(session)
		if high, err := opts.Store.HighScore(game.ID()); err == nil {
			m.highScore = high
		}
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Session returns the driven session.
func (m GameModel) Session() *engine.Session { return m.session }

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.loop.Sync()
	return tickCmd(m.gen, m.tickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// resize updates the screen buffer and the session viewport. The last
// terminal row is kept for the key help.
func (m *GameModel) resize(width, height int) {
	height = max(height-1, 0)
	m.screen.Resize(width, height)
	m.help.Width = width
	w, h := NewCanvas(width, height).Viewport()
	m.session.SetViewport(w, h)
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent, cmd := m.input.Translate(msg)
	phase := m.session.Phase()

	switch intent {
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit
	case IntentScreenshot:
		m.saveScreenshot()
	case IntentStart:
		m.session.StartOrResume()
		m.loop.Sync()
	case IntentPause:
		m.session.TogglePause()
		m.loop.Sync()
	case IntentRestart:
		if phase == engine.PhaseGameOver || phase == engine.PhasePaused {
			m.refreshHighScore()
			m.session.Reset()
			m.session.Start()
			m.loop.Sync()
		}
	case IntentBack:
		if phase != engine.PhaseRunning {
			m.backToMenu = true
			return m, tea.Quit
		}
	case IntentCommand:
		if phase == engine.PhaseReady && cmd.Kind == core.CmdFire {
			m.session.Start()
			m.loop.Sync()
			return m, nil
		}
		m.session.Handle(cmd)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if err := m.loop.Step(); err != nil && !errors.Is(err, engine.ErrTickInProgress) {
		m.logger.Error("tick failed", "game", m.session.GameID(), "err", err)
	}
	return m, tickCmd(m.gen, m.tickRate)
}

func (m *GameModel) refreshHighScore() {
	if m.store == nil {
		return
	}
	if high, err := m.store.HighScore(m.session.GameID()); err == nil {
		m.highScore = high
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.session.GameID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *GameModel) draw() {
	Draw(m.screen, Frame{
		Title:     m.session.Title(),
		Status:    m.session.Status(),
		Snapshot:  m.session.Snapshot(),
		HighScore: m.highScore,
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.input.Keys())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastSaved returns the most recently stored score of this model's runs.
func (m GameModel) LastSaved() *storage.ScoreEntry {
	if m.recorder == nil {
		return nil
	}
	return m.recorder.Last()
}

// Run plays one game in the terminal until the user quits.
func Run(game engine.Game, opts Options) error {
	model := NewGameModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
