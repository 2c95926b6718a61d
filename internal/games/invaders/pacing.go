package invaders

import (
	"math"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Fraction returns the share of the formation still alive, in [0, 1].
func Fraction(alive, total int) float64 {
	if total <= 0 {
		return 0
	}
	return core.ClampF(float64(alive)/float64(total), 0, 1)
}

// waveScale returns factor^(wave-1).
func waveScale(factor float64, wave int) float64 {
	if factor <= 0 {
		return 1
	}
	return math.Pow(factor, float64(max(wave, 1)-1))
}

// StepInterval returns the seconds between march steps: the formation
// speeds up as it thins out and again with every wave.
func StepInterval(f config.InvadersFormation, fraction float64, wave int) float64 {
	return core.Lerp(f.FastInterval, f.SlowInterval, core.ClampF(fraction, 0, 1)) * waveScale(f.WaveFactor, wave)
}

// MaxShots returns how many enemy shots may be in flight at once.
func MaxShots(fire config.InvadersFire, fraction float64) int {
	n := core.Lerp(float64(fire.MinShots), float64(fire.MaxShots), core.ClampF(fraction, 0, 1))
	return max(int(math.Round(n)), 0)
}

// VolleyInterval returns the seconds between enemy volleys. Fewer enemies
// and later waves fire more often.
func VolleyInterval(fire config.InvadersFire, waveFactor, fraction float64, wave int) float64 {
	return core.Lerp(fire.MinDelay, fire.MaxDelay, core.ClampF(fraction, 0, 1)) * waveScale(waveFactor, wave)
}
