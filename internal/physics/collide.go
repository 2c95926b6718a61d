package physics

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Walls is a set of playfield edges.
type Walls uint8

const (
	WallLeft Walls = 1 << iota
	WallRight
	WallTop
	WallBottom
)

// Has reports whether w contains all edges of o.
func (w Walls) Has(o Walls) bool {
	return w&o == o && o != 0
}

// ReflectWalls bounces the ball off the given edges of field. The ball is
// pushed back inside and the velocity component pointing into the wall is
// flipped. The returned set names the walls that were hit.
func ReflectWalls(b *Ball, field core.Rect, walls Walls) Walls {
	var hit Walls
	r := b.Radius
	if walls.Has(WallLeft) && b.Pos.X-r < field.X {
		b.Pos.X = field.X + r
		b.Vel.X = math.Abs(b.Vel.X)
		hit |= WallLeft
	}
	if walls.Has(WallRight) && b.Pos.X+r > field.Right() {
		b.Pos.X = field.Right() - r
		b.Vel.X = -math.Abs(b.Vel.X)
		hit |= WallRight
	}
	if walls.Has(WallTop) && b.Pos.Y-r < field.Y {
		b.Pos.Y = field.Y + r
		b.Vel.Y = math.Abs(b.Vel.Y)
		hit |= WallTop
	}
	if walls.Has(WallBottom) && b.Pos.Y+r > field.Bottom() {
		b.Pos.Y = field.Bottom() - r
		b.Vel.Y = -math.Abs(b.Vel.Y)
		hit |= WallBottom
	}
	return hit
}

// ClampInside moves the ball's center into field. On an axis narrower than
// the ball the center is placed mid-field.
func ClampInside(b *Ball, field core.Rect) {
	b.Pos.X = clampSpan(b.Pos.X, field.X, field.Right(), b.Radius)
	b.Pos.Y = clampSpan(b.Pos.Y, field.Y, field.Bottom(), b.Radius)
}

func clampSpan(v, lo, hi, r float64) float64 {
	if hi-lo < 2*r {
		return (lo + hi) / 2
	}
	return core.ClampF(v, lo+r, hi-r)
}

// ClampRect keeps r inside field, moving it rather than resizing it.
func ClampRect(r, field core.Rect) core.Rect {
	r.X = core.ClampF(r.X, field.X, field.Right()-r.W)
	r.Y = core.ClampF(r.Y, field.Y, field.Bottom()-r.H)
	return r
}

// Side identifies which face of a rectangle a circle struck.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// CircleIntersectsRect tests a circle against a rectangle using the point
// of the rectangle nearest to the center.
func CircleIntersectsRect(center core.Vec, radius float64, r core.Rect) bool {
	nx := core.ClampF(center.X, r.X, r.Right())
	ny := core.ClampF(center.Y, r.Y, r.Bottom())
	dx, dy := center.X-nx, center.Y-ny
	return dx*dx+dy*dy < radius*radius
}

// PenetrationSide returns the face with the smallest penetration depth of
// a circle overlapping r. Ties go to the vertical faces.
func PenetrationSide(center core.Vec, radius float64, r core.Rect) Side {
	depths := [...]struct {
		side  Side
		depth float64
	}{
		{SideTop, center.Y + radius - r.Y},
		{SideBottom, r.Bottom() - (center.Y - radius)},
		{SideLeft, center.X + radius - r.X},
		{SideRight, r.Right() - (center.X - radius)},
	}
	best := depths[0]
	for _, d := range depths[1:] {
		if d.depth < best.depth {
			best = d
		}
	}
	return best.side
}

// ResolveCircleRect separates the ball from r along the axis of minimum
// penetration and flips the matching velocity component so the ball moves
// away from the face. It returns SideNone when they do not touch.
func ResolveCircleRect(b *Ball, r core.Rect) Side {
	if !CircleIntersectsRect(b.Pos, b.Radius, r) {
		return SideNone
	}
	side := PenetrationSide(b.Pos, b.Radius, r)
	switch side {
	case SideTop:
		b.Pos.Y = r.Y - b.Radius
		b.Vel.Y = -math.Abs(b.Vel.Y)
	case SideBottom:
		b.Pos.Y = r.Bottom() + b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
	case SideLeft:
		b.Pos.X = r.X - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
	case SideRight:
		b.Pos.X = r.Right() + b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
	}
	return side
}
