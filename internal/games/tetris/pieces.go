package tetris

import "github.com/vovakirdan/arcade-engine/internal/core"

// Kind identifies a tetromino. The value is also what a locked cell holds
// on the board, so 0 stays free for "empty".
type Kind int

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

// String returns the conventional letter for the piece.
func (k Kind) String() string {
	if k < KindI || k > KindL {
		return "?"
	}
	return string("IOTSZJL"[k-1])
}

// shapes holds spawn-orientation offsets around the rotation pivot.
// Y grows downward.
var shapes = [KindCount + 1][4]core.Cell{
	KindI: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	KindO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindT: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}},
	KindS: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1}},
	KindZ: {{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	KindJ: {{X: -1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
	KindL: {{X: 1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}},
}

// kicks are the horizontal shifts tried, in order, after a rotation.
var kicks = [...]int{0, -1, 1, -2, 2}

// Piece is a falling tetromino: integer offsets from an anchor cell.
type Piece struct {
	Kind    Kind
	Offsets [4]core.Cell
	Pos     core.Cell
}

// NewPiece returns a piece of the given kind in spawn orientation at pos.
func NewPiece(k Kind, pos core.Cell) Piece {
	return Piece{Kind: k, Offsets: shapes[k], Pos: pos}
}

// Cells returns the absolute board cells of the piece.
func (p Piece) Cells() [4]core.Cell {
	var out [4]core.Cell
	for i, o := range p.Offsets {
		out[i] = p.Pos.Add(o)
	}
	return out
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Pos = p.Pos.Add(core.Cell{X: dx, Y: dy})
	return p
}

// Rotated returns the piece turned clockwise, (x,y) -> (-y,x). The O
// piece is symmetric and returned unchanged.
func (p Piece) Rotated() Piece {
	if p.Kind == KindO {
		return p
	}
	for i, o := range p.Offsets {
		p.Offsets[i] = core.Cell{X: -o.Y, Y: o.X}
	}
	return p
}

// top returns the smallest offset row, used to spawn flush with row 0.
func (p Piece) top() int {
	m := p.Offsets[0].Y
	for _, o := range p.Offsets[1:] {
		m = min(m, o.Y)
	}
	return m
}
