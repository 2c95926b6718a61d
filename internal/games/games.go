// Package games links every built-in game into the registry.
package games

import (
	_ "github.com/vovakirdan/arcade-engine/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-engine/internal/games/invaders"
	_ "github.com/vovakirdan/arcade-engine/internal/games/pong"
	_ "github.com/vovakirdan/arcade-engine/internal/games/snake"
	_ "github.com/vovakirdan/arcade-engine/internal/games/t2048"
	_ "github.com/vovakirdan/arcade-engine/internal/games/tetris"
)

// IDs lists the built-in game identifiers in menu order.
var IDs = []string{"pong", "breakout", "invaders", "snake", "tetris", "2048"}
