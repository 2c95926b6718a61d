package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

const scoreboardRows = 50

var (
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type scoreboardKeys struct {
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next")),
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "scroll")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the stored runs. The first tab summarizes every
// game; the others list the best runs of one game.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	tab    int // 0 is the overview
	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int
	err    error

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the scoreboard. A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   defaultScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// reload rebuilds the table for the current tab.
func (m *ScoreboardModel) reload() {
	var (
		cols []table.Column
		rows []table.Row
	)
	m.err = nil
	if m.tab == 0 {
		cols = []table.Column{{Title: "Game", Width: 16}, {Title: "Runs", Width: 6}, {Title: "Best", Width: 9}, {Title: "Avg", Width: 9}, {Title: "Wave", Width: 5}, {Title: "Last played", Width: 13}}
		var stats map[string]*storage.GameStats
		if m.store != nil {
			stats, m.err = m.store.GetAllGamesStats()
		}
		rows = overviewRows(m.games, stats)
	} else {
		cols = []table.Column{{Title: "Rank", Width: 5}, {Title: "Score", Width: 10}, {Title: "Wave", Width: 5}, {Title: "Date", Width: 13}}
		var entries []storage.ScoreEntry
		if m.store != nil {
			entries, m.err = m.store.TopScores(m.games[m.tab-1].ID, scoreboardRows)
		}
		rows = scoreRows(entries)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	m.table = t
}

func overviewRows(games []registry.GameInfo, stats map[string]*storage.GameStats) []table.Row {
	rows := make([]table.Row, 0, len(games))
	for _, g := range games {
		st, ok := stats[g.ID]
		if !ok || st.GamesCount == 0 {
			rows = append(rows, table.Row{g.Title, "0", "-", "-", "-", "never"})
			continue
		}
		rows = append(rows, table.Row{
			g.Title,
			fmt.Sprint(st.GamesCount),
			fmt.Sprint(st.HighScore),
			fmt.Sprintf("%.0f", st.AvgScore),
			waveLabel(st.BestWave),
			st.LastPlayed.Format("Jan 02 15:04"),
		})
	}
	return rows
}

func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(e.Score),
			waveLabel(e.Wave),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func waveLabel(w int) string {
	if w <= 0 {
		return "-"
	}
	return fmt.Sprint(w)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % (len(m.games) + 1)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + len(m.games)) % (len(m.games) + 1)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) tabTitle(i int) string {
	if i == 0 {
		return "All games"
	}
	return m.games[i-1].Title
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(m.games)+1)
	for i := range tabs {
		style := boardTabStyle
		if i == m.tab {
			style = boardActiveStyle
		}
		tabs[i] = style.Render(m.tabTitle(i))
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width {
		tabLine = boardActiveStyle.Render("< " + m.tabTitle(m.tab) + " >")
	}

	body := m.table.View()
	switch {
	case m.err != nil:
		body = menuHintStyle.Render("Scores unavailable: " + m.err.Error())
	case len(m.table.Rows()) == 0:
		body = menuHintStyle.Italic(true).Render("No scores recorded yet.")
	}

	var b strings.Builder
	b.WriteString(centerText(menuTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard until the user leaves. goBack is true
// when the menu should be shown again.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
