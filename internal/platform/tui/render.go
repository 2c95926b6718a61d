package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/games/breakout"
	"github.com/vovakirdan/arcade-engine/internal/games/invaders"
	"github.com/vovakirdan/arcade-engine/internal/games/pong"
	"github.com/vovakirdan/arcade-engine/internal/games/snake"
	"github.com/vovakirdan/arcade-engine/internal/games/t2048"
	"github.com/vovakirdan/arcade-engine/internal/games/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !startColor.Valid() {
				startColor = core.ColorDefault
			}
			style := colorStyles[startColor]
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Frame is everything a renderer needs for one view.
type Frame struct {
	Title     string
	Status    engine.Status
	Snapshot  engine.Snapshot
	HighScore int
}

// Draw renders a frame into dst: HUD on top, playfield in the middle,
// the phase banner at the bottom.
func Draw(dst *core.Screen, f Frame) {
	dst.Clear()
	c := NewCanvas(dst.Width(), dst.Height())

	switch s := f.Snapshot.(type) {
	case pong.Snapshot:
		drawPong(dst, c, s)
	case breakout.Snapshot:
		drawBreakout(dst, c, s)
	case invaders.Snapshot:
		drawInvaders(dst, c, s)
	case snake.Snapshot:
		drawSnake(dst, c, s)
	case tetris.Snapshot:
		drawTetris(dst, c, s)
	case t2048.Snapshot:
		drawT2048(dst, c, s)
	}

	drawHUD(dst, f)
	drawBanner(dst, f.Status.Phase)
}

func drawHUD(dst *core.Screen, f Frame) {
	st := f.Status
	parts := []string{f.Title, fmt.Sprintf("Score %d", st.Score)}
	if st.Lives > 0 {
		parts = append(parts, fmt.Sprintf("Lives %d", st.Lives))
	}
	if st.Wave > 0 {
		parts = append(parts, fmt.Sprintf("Wave %d", st.Wave))
	}
	if st.Level > 0 {
		parts = append(parts, fmt.Sprintf("Level %d", st.Level))
	}
	if f.HighScore > 0 {
		parts = append(parts, fmt.Sprintf("Best %d", max(f.HighScore, st.Score)))
	}
	dst.DrawTextColored(1, 0, strings.Join(parts, "  "), core.ColorBrightWhite)
}

// bannerText returns the footer message for a phase.
func bannerText(p engine.Phase) string {
	switch p {
	case engine.PhaseReady:
		return "READY - enter to start"
	case engine.PhasePaused:
		return "PAUSED - enter to resume, b for menu"
	case engine.PhaseGameOver:
		return "GAME OVER - r to restart, b for menu"
	default:
		return "p pause  q quit"
	}
}

func drawBanner(dst *core.Screen, p engine.Phase) {
	text := bannerText(p)
	x := max((dst.Width()-len([]rune(text)))/2, 0)
	color := core.ColorGray
	if p != engine.PhaseRunning {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(x, dst.Height()-1, text, color)
}
