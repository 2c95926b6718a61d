package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.CPU.MinSkill = 0.4
		cfg.CPU.MaxSkill = 0.7
		cfg.Ball.Speed *= 0.85
	case DifficultyHard:
		cfg.CPU.MinSkill = 0.75
		cfg.CPU.MaxSkill = 1.0
		cfg.Ball.Speed *= 1.2
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 0.2
		cfg.Ball.Speed *= 0.85
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 0.12
		cfg.Ball.Speed *= 1.25
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Fire.MaxShots = 2
		cfg.Formation.SlowInterval *= 1.2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Fire.MaxShots = 6
		cfg.Fire.MinDelay *= 0.7
		cfg.Fire.MaxDelay *= 0.7
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseInterval = 0.2
	case DifficultyHard:
		cfg.Speed.BaseInterval = 0.1
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseInterval = 1.0
		cfg.Speed.LevelScore = 800
	case DifficultyHard:
		cfg.Speed.BaseInterval = 0.5
		cfg.Speed.LevelScore = 300
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.FourChance = 0.05
	case DifficultyHard:
		cfg.FourChance = 0.25
	}
}
