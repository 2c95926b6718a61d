package config

import "math"

// DifficultyConfig describes a score-driven ramp from an initial level to
// full difficulty.
type DifficultyConfig struct {
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAt        int     `yaml:"max_at"`        // score at which level 1.0 is reached
}

// Level returns the difficulty in [0, 1] for the given score. It depends
// on the score only, so a replayed sequence sees the same difficulty.
func (d DifficultyConfig) Level(score int) float64 {
	initial := clampF(d.InitialLevel, 0, 1)
	maxAt := float64(d.MaxAt)
	if maxAt <= 0 {
		return initial
	}
	progress := clampF(float64(score)/maxAt, 0, 1)
	return initial + progress*(1-initial)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
