package grid

import "github.com/vovakirdan/arcade-engine/internal/core"

// DefaultAttempts is how many random probes RandomFree makes before it
// falls back to a scan.
const DefaultAttempts = 64

// RandomFree picks a uniformly random cell of a w×h board for which
// occupied returns false. It probes random cells first (rejection
// sampling); if every probe hits an occupied cell it collects the free
// cells and picks one of them, so a nearly full board still terminates.
// ok is false when the board has no free cell.
func RandomFree(rng core.Rand, w, h int, occupied func(core.Cell) bool, attempts int) (core.Cell, bool) {
	if w <= 0 || h <= 0 {
		return core.Cell{}, false
	}
	for i := 0; i < attempts; i++ {
		c := core.Cell{X: rng.Intn(w), Y: rng.Intn(h)}
		if !occupied(c) {
			return c, true
		}
	}

	var free []core.Cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.Cell{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}

// RandomEmpty picks a random empty cell of g.
func (g *Grid) RandomEmpty(rng core.Rand) (core.Cell, bool) {
	return RandomFree(rng, g.w, g.h, func(c core.Cell) bool { return !g.Free(c) }, DefaultAttempts)
}
