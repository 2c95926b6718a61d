package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

const eps = 1e-9

func TestEnforceMinHorizontal(t *testing.T) {
	tests := []struct {
		name string
		in   core.Vec
	}{
		{"near vertical up", core.Vec{X: 10, Y: -300}},
		{"near vertical down left", core.Vec{X: -1, Y: 250}},
		{"pure vertical", core.Vec{X: 0, Y: -200}},
		{"already shallow", core.Vec{X: 300, Y: 40}},
		{"exactly 45 degrees", core.Vec{X: 100, Y: -100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := EnforceMinHorizontal(tc.in, MinHorizontalFraction)

			assert.InDelta(t, tc.in.Len(), out.Len(), 1e-6, "speed must be conserved")
			assert.GreaterOrEqual(t, HorizontalFraction(out), MinHorizontalFraction-eps)
			if tc.in.Y != 0 {
				assert.Equal(t, core.Sign(tc.in.Y), core.Sign(out.Y), "vertical sign must be kept")
			}
			if tc.in.X != 0 {
				assert.Equal(t, core.Sign(tc.in.X), core.Sign(out.X), "horizontal sign must be kept")
			}
		})
	}

	// Vectors that satisfy the floor are returned unchanged
	v := core.Vec{X: 300, Y: 40}
	assert.Equal(t, v, EnforceMinHorizontal(v, MinHorizontalFraction))
	assert.Equal(t, core.Vec{}, EnforceMinHorizontal(core.Vec{}, MinHorizontalFraction))
}

func TestShapeBounceAngles(t *testing.T) {
	speed := 200.0

	center := ShapeBounce(speed, 0, 4, 16, 1, 1)
	assert.InDelta(t, 4, AngleFromHorizontal(center), 1e-9)
	assert.InDelta(t, speed, center.Len(), 1e-9)

	edge := ShapeBounce(speed, -1, 4, 16, -1, -1)
	assert.InDelta(t, 16, AngleFromHorizontal(edge), 1e-9)
	assert.Less(t, edge.X, 0.0)
	assert.Less(t, edge.Y, 0.0)

	half := ShapeBounce(speed, 0.5, 4, 16, 1, 1)
	assert.InDelta(t, 10, AngleFromHorizontal(half), 1e-9)

	// rel outside [-1, 1] is clamped
	wild := ShapeBounce(speed, 7, 4, 16, 1, 1)
	assert.InDelta(t, 16, AngleFromHorizontal(wild), 1e-9)
}

func TestShapeBounceDeadCenterBrickBreaker(t *testing.T) {
	in := core.Vec{X: 160, Y: -220}
	out := ShapeBounce(in.Len(), 0, 45, 90, core.Sign(in.X), -1)
	out = EnforceMinHorizontal(out, MinHorizontalFraction)

	assert.Less(t, out.Y, 0.0)
	assert.Greater(t, out.X, 0.0)
	assert.InDelta(t, 45, AngleFromHorizontal(out), 1e-9)
	assert.InDelta(t, in.Len(), out.Len(), 1e-9)
}

func TestSubSteps(t *testing.T) {
	assert.Equal(t, 1, SubSteps(core.Vec{}, 0.016, 5))
	assert.Equal(t, 1, SubSteps(core.Vec{X: 100}, 0.01, 5))
	assert.Equal(t, 4, SubSteps(core.Vec{X: 1000}, 0.02, 5))
	assert.Equal(t, maxSubSteps, SubSteps(core.Vec{X: 1e9}, 1, 1))
	assert.Equal(t, maxSubSteps, SubSteps(core.Vec{X: 10}, 1, 0))
}

func TestSweepDoesNotTunnel(t *testing.T) {
	// A thin wall the ball would skip over with a single Euler step
	wall := core.NewRect(50, 0, 2, 100)
	b := Ball{Pos: core.Vec{X: 10, Y: 50}, Vel: core.Vec{X: 3000, Y: 0}, Radius: 3}

	var side Side
	Sweep(&b, 0.033, func(b *Ball) bool {
		if s := ResolveCircleRect(b, wall); s != SideNone {
			side = s
		}
		return true
	})

	assert.Equal(t, SideLeft, side)
	assert.Less(t, b.Pos.X, wall.X, "ball must stay on the near side of the wall")
	assert.Less(t, b.Vel.X, 0.0)
}

func TestSweepStopsEarly(t *testing.T) {
	b := Ball{Pos: core.Vec{}, Vel: core.Vec{X: 100}, Radius: 1}
	calls := 0
	Sweep(&b, 0.1, func(*Ball) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestReflectWalls(t *testing.T) {
	field := core.NewRect(0, 0, 100, 80)

	b := Ball{Pos: core.Vec{X: -2, Y: 40}, Vel: core.Vec{X: -50, Y: 10}, Radius: 2}
	hit := ReflectWalls(&b, field, WallLeft|WallRight|WallTop)
	assert.Equal(t, WallLeft, hit)
	assert.Equal(t, 2.0, b.Pos.X)
	assert.Greater(t, b.Vel.X, 0.0)

	// The bottom is not a wall unless asked for
	b = Ball{Pos: core.Vec{X: 50, Y: 85}, Vel: core.Vec{X: 5, Y: 30}, Radius: 2}
	hit = ReflectWalls(&b, field, WallLeft|WallRight|WallTop)
	assert.Equal(t, Walls(0), hit)
	assert.Equal(t, 85.0, b.Pos.Y)

	hit = ReflectWalls(&b, field, WallTop|WallBottom)
	assert.Equal(t, WallBottom, hit)
	assert.Equal(t, 78.0, b.Pos.Y)
	assert.Less(t, b.Vel.Y, 0.0)
}

func TestResolveCircleRectAxis(t *testing.T) {
	brick := core.NewRect(40, 20, 20, 10)

	tests := []struct {
		name string
		pos  core.Vec
		vel  core.Vec
		side Side
	}{
		{"from below", core.Vec{X: 50, Y: 32}, core.Vec{X: 10, Y: -100}, SideBottom},
		{"from above", core.Vec{X: 50, Y: 18}, core.Vec{X: 10, Y: 100}, SideTop},
		{"from left", core.Vec{X: 38, Y: 25}, core.Vec{X: 100, Y: 5}, SideLeft},
		{"from right", core.Vec{X: 62, Y: 25}, core.Vec{X: -100, Y: 5}, SideRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Pos: tc.pos, Vel: tc.vel, Radius: 3}
			side := ResolveCircleRect(&b, brick)
			require.Equal(t, tc.side, side)
			assert.False(t, CircleIntersectsRect(b.Pos, b.Radius-1e-9, brick), "ball must be pushed out")

			switch side {
			case SideBottom:
				assert.Greater(t, b.Vel.Y, 0.0)
			case SideTop:
				assert.Less(t, b.Vel.Y, 0.0)
			case SideLeft:
				assert.Less(t, b.Vel.X, 0.0)
			case SideRight:
				assert.Greater(t, b.Vel.X, 0.0)
			}
		})
	}

	miss := Ball{Pos: core.Vec{X: 0, Y: 0}, Vel: core.Vec{X: 1, Y: 1}, Radius: 3}
	assert.Equal(t, SideNone, ResolveCircleRect(&miss, brick))
}

func TestClampInside(t *testing.T) {
	field := core.NewRect(0, 0, 100, 50)
	b := Ball{Pos: core.Vec{X: 150, Y: -20}, Radius: 4}
	ClampInside(&b, field)
	assert.Equal(t, core.Vec{X: 96, Y: 4}, b.Pos)

	tiny := core.NewRect(0, 0, 4, 4)
	ClampInside(&b, tiny)
	assert.Equal(t, core.Vec{X: 2, Y: 2}, b.Pos)
}

func TestRelativeOffset(t *testing.T) {
	assert.Equal(t, 0.0, RelativeOffset(50, 50, 10))
	assert.Equal(t, 1.0, RelativeOffset(70, 50, 10))
	assert.Equal(t, -0.5, RelativeOffset(45, 50, 10))
	assert.Equal(t, 0.0, RelativeOffset(45, 50, 0))
	assert.True(t, math.Abs(DeflectionAngle(1, 0, 90)-math.Pi/2) < eps)
}
