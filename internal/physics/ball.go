// Package physics holds the collision and motion rules shared by the
// ball-and-paddle games: sub-stepped integration, wall reflection,
// angle-shaped paddle bounces, the minimum-horizontal-velocity rule and
// circle-versus-rectangle resolution.
package physics

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// MinHorizontalFraction is the smallest allowed |vx|/speed after any
// reflection.
const MinHorizontalFraction = 0.70

// maxSubSteps bounds the work of a single sweep.
const maxSubSteps = 64

// Ball is a circle moving with a constant velocity between collisions.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
}

// Bounds returns the bounding box of the ball.
func (b Ball) Bounds() core.Rect {
	return core.RectAround(b.Pos, 2*b.Radius, 2*b.Radius)
}

// Speed returns the magnitude of the ball's velocity.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// SubSteps returns how many slices dt must be cut into so that the ball
// never travels more than its radius per slice.
func SubSteps(vel core.Vec, dt, radius float64) int {
	dist := vel.Len() * dt
	if dist <= 0 {
		return 1
	}
	if radius <= 0 {
		return maxSubSteps
	}
	n := int(math.Ceil(dist / radius))
	return core.Clamp(n, 1, maxSubSteps)
}

// Sweep integrates the ball over dt in sub-steps, calling collide after
// every partial move. collide may change the ball's position and velocity;
// returning false stops the sweep early (for example when the ball was
// lost or respawned).
func Sweep(b *Ball, dt float64, collide func(b *Ball) bool) {
	if dt <= 0 {
		return
	}
	n := SubSteps(b.Vel, dt, b.Radius)
	step := dt / float64(n)
	for i := 0; i < n; i++ {
		b.Pos = b.Pos.Add(b.Vel.Scale(step))
		if !collide(b) {
			return
		}
	}
}

// WithSpeed returns v rescaled to the given magnitude. A zero vector stays
// zero.
func WithSpeed(v core.Vec, speed float64) core.Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(speed / l)
}

// EnforceMinHorizontal raises |vx| to minFrac of the total speed when it
// falls below it, rescaling vy so the speed is unchanged. Signs are kept;
// a zero component is treated as positive.
func EnforceMinHorizontal(v core.Vec, minFrac float64) core.Vec {
	speed := v.Len()
	if speed == 0 {
		return v
	}
	floor := minFrac * speed
	if math.Abs(v.X) >= floor {
		return v
	}
	sx, sy := signOr(v.X, 1), signOr(v.Y, 1)
	vx := floor
	vy := math.Sqrt(math.Max(speed*speed-vx*vx, 0))
	return core.Vec{X: sx * vx, Y: sy * vy}
}

// HorizontalFraction returns |vx|/speed, or 1 for a resting ball.
func HorizontalFraction(v core.Vec) float64 {
	speed := v.Len()
	if speed == 0 {
		return 1
	}
	return math.Abs(v.X) / speed
}

// DeflectionAngle maps the impact offset rel in [-1, 1] to an angle from
// the horizontal, interpolating between minDeg at the paddle center and
// maxDeg at its edge. The result is in radians.
func DeflectionAngle(rel, minDeg, maxDeg float64) float64 {
	t := math.Abs(core.ClampF(rel, -1, 1))
	return core.Lerp(minDeg, maxDeg, t) * math.Pi / 180
}

// AngleFromHorizontal returns the angle between v and the x axis in
// degrees, in [0, 90].
func AngleFromHorizontal(v core.Vec) float64 {
	return math.Atan2(math.Abs(v.Y), math.Abs(v.X)) * 180 / math.Pi
}

// ShapeBounce builds the outgoing velocity of a paddle hit: speed is kept,
// the angle from the horizontal follows DeflectionAngle, the horizontal
// component points along hSign and the vertical one along vSign.
func ShapeBounce(speed, rel, minDeg, maxDeg, hSign, vSign float64) core.Vec {
	a := DeflectionAngle(rel, minDeg, maxDeg)
	return core.Vec{
		X: signOr(hSign, 1) * speed * math.Cos(a),
		Y: signOr(vSign, 1) * speed * math.Sin(a),
	}
}

// RelativeOffset returns where x sits along a span centered at center with
// the given half extent, normalized to [-1, 1].
func RelativeOffset(x, center, half float64) float64 {
	if half <= 0 {
		return 0
	}
	return core.ClampF((x-center)/half, -1, 1)
}

func signOr(x, fallback float64) float64 {
	if s := core.Sign(x); s != 0 {
		return s
	}
	return fallback
}
