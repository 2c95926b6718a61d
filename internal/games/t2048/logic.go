package t2048

import "github.com/vovakirdan/arcade-engine/internal/core"

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a 4×4 grid of tile values indexed [y][x]; 0 is empty.
type Board [BoardSize][BoardSize]int

// MoveResult describes one swipe of the whole board.
type MoveResult struct {
	Board   Board
	Score   int   // sum of the merged tile values
	Changed bool  // false means the swipe is a no-op
	Merges  []int // value of every tile produced by a merge
}

// line returns the cells of line i as seen by a swipe toward dir: index 0
// is the cell on the edge the tiles move to.
func line(dir core.Direction, i int) [BoardSize]core.Cell {
	var cells [BoardSize]core.Cell
	for k := range BoardSize {
		far := BoardSize - 1 - k
		switch dir {
		case core.DirLeft:
			cells[k] = core.Cell{X: k, Y: i}
		case core.DirRight:
			cells[k] = core.Cell{X: far, Y: i}
		case core.DirUp:
			cells[k] = core.Cell{X: i, Y: k}
		case core.DirDown:
			cells[k] = core.Cell{X: i, Y: far}
		}
	}
	return cells
}

// compact slides the tiles of a line toward index 0 and merges equal
// neighbours. A tile produced by a merge does not merge again in the same
// swipe, so 4 4 4 4 becomes 8 8.
func compact(in [BoardSize]int) (out [BoardSize]int, score int, merges []int) {
	n := 0
	fresh := false // out[n-1] was produced by a merge
	for _, v := range in {
		switch {
		case v == 0:
		case n > 0 && !fresh && out[n-1] == v:
			out[n-1] = 2 * v
			score += 2 * v
			merges = append(merges, 2*v)
			fresh = true
		default:
			out[n] = v
			n++
			fresh = false
		}
	}
	return out, score, merges
}

// Slide swipes the board toward dir. Directions other than the four
// headings leave the board unchanged.
func Slide(b Board, dir core.Direction) MoveResult {
	res := MoveResult{Board: b}
	if dir.Delta() == (core.Cell{}) {
		return res
	}
	for i := range BoardSize {
		cells := line(dir, i)
		var in [BoardSize]int
		for k, c := range cells {
			in[k] = b[c.Y][c.X]
		}
		out, score, merges := compact(in)
		if out != in {
			res.Changed = true
		}
		for k, c := range cells {
			res.Board[c.Y][c.X] = out[k]
		}
		res.Score += score
		res.Merges = append(res.Merges, merges...)
	}
	return res
}

// EmptyCells returns the empty cells in row-major order.
func EmptyCells(b Board) []core.Cell {
	var cells []core.Cell
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, core.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// CanMove reports whether any swipe would change the board: an empty cell
// exists or two orthogonal neighbours are equal.
func CanMove(b Board) bool {
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				return true
			}
			if (x+1 < BoardSize && row[x+1] == v) || (y+1 < BoardSize && b[y+1][x] == v) {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports that no swipe can change the board.
func IsGameOver(b Board) bool { return !CanMove(b) }

// MaxTile returns the largest tile on the board.
func MaxTile(b Board) int {
	best := 0
	for _, row := range b {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}
