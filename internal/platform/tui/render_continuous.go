package tui

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/games/breakout"
	"github.com/vovakirdan/arcade-engine/internal/games/invaders"
	"github.com/vovakirdan/arcade-engine/internal/games/pong"
)

func drawPong(dst *core.Screen, c Canvas, s pong.Snapshot) {
	mid := s.Field.Center().X
	for y := s.Field.Y; y < s.Field.Bottom(); y += 2 * cellH {
		c.Plot(dst, core.Vec{X: mid, Y: y}, '┊', core.ColorGray)
	}
	c.Fill(dst, s.Player, '█', core.ColorBrightCyan)
	c.Fill(dst, s.CPU, '█', core.ColorBrightRed)
	c.Plot(dst, s.Ball.Pos, '●', core.ColorBrightWhite)
}

// brickColors cycles by row for normal bricks.
var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

func drawBreakout(dst *core.Screen, c Canvas, s breakout.Snapshot) {
	for _, b := range s.Bricks {
		if !b.Alive {
			continue
		}
		switch b.Type {
		case breakout.BrickSolid:
			c.Fill(dst, b.Rect, '▓', core.ColorGray)
		case breakout.BrickHard:
			glyph := '▓'
			if b.HP < 2 {
				glyph = '▒'
			}
			c.Fill(dst, b.Rect, glyph, core.ColorWhite)
		default:
			c.Fill(dst, b.Rect, '█', brickColors[b.Row%len(brickColors)])
		}
	}
	c.Fill(dst, s.Paddle, '▀', core.ColorBrightWhite)
	c.Plot(dst, s.Ball.Pos, 'o', core.ColorBrightYellow)
}

// alienGlyphs is indexed by formation row, top first.
var alienGlyphs = []struct {
	r     rune
	color core.Color
}{
	{'W', core.ColorBrightMagenta},
	{'M', core.ColorBrightCyan},
	{'M', core.ColorBrightCyan},
	{'X', core.ColorBrightGreen},
	{'X', core.ColorBrightGreen},
}

func drawInvaders(dst *core.Screen, c Canvas, s invaders.Snapshot) {
	for _, a := range s.Aliens {
		if !a.Alive {
			continue
		}
		g := alienGlyphs[min(a.Row, len(alienGlyphs)-1)]
		c.Fill(dst, a.Rect, g.r, g.color)
	}
	for _, sh := range s.PlayerShots {
		if sh.Active {
			c.Plot(dst, sh.Rect.Center(), '|', core.ColorBrightWhite)
		}
	}
	for _, sh := range s.EnemyShots {
		if sh.Active {
			c.Plot(dst, sh.Rect.Center(), '!', core.ColorBrightRed)
		}
	}
	c.Fill(dst, s.Player, '▲', core.ColorBrightGreen)
}
