package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/2048.yaml
var defaultT2048YAML []byte

// DefaultEngineConfig returns the default driver configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TickRate: 60,
		MaxDT:    0.033,
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddle: PongPaddle{
			Width:  0.02,
			Height: 0.2,
			Offset: 0.04,
			Nudge:  0.08,
		},
		Ball: PongBall{
			Radius:   0.015,
			Speed:    0.55,
			SpeedUp:  1.05,
			MaxSpeed: 1.5,
		},
		Bounce: BounceAngles{Min: 4, Max: 16},
		Gameplay: PongGameplay{
			WinScore: 7,
		},
		CPU: PongCPU{
			MinSkill: 0.55,
			MaxSkill: 0.9,
			MaxAt:    6,
		},
	}
}

// DefaultBreakoutConfig returns the default brick breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Paddle: BreakoutPaddle{
			Width:        0.16,
			Height:       0.025,
			BottomMargin: 0.06,
			Nudge:        0.06,
		},
		Ball: BreakoutBall{
			Radius:        0.012,
			Speed:         0.6,
			SpeedStep:     0.02,
			MaxMultiplier: 1.6,
		},
		Bounce: BounceAngles{Min: 45, Max: 90},
		Bricks: BreakoutBricks{
			Top:       0.08,
			RowHeight: 0.04,
			Gap:       0.004,
			RowPoints: 10,
		},
		Gameplay: BreakoutGameplay{
			Lives:      3,
			StartLevel: 0,
		},
	}
}

// DefaultInvadersConfig returns the default formation game configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Formation: InvadersFormation{
			Rows:         5,
			Cols:         10,
			RowPoints:    []int{30, 20, 20, 10, 10},
			Top:          0.1,
			Width:        0.65,
			CellHeight:   0.06,
			AlienScale:   0.7,
			Step:         0.015,
			SlowInterval: 0.8,
			FastInterval: 0.05,
			WaveFactor:   0.85,
		},
		Fire: InvadersFire{
			MinShots:    1,
			MaxShots:    4,
			MinDelay:    0.35,
			MaxDelay:    1.4,
			ForwardBias: 0.6,
			ShotSpeed:   0.45,
			ShotWidth:   0.008,
			ShotHeight:  0.03,
		},
		Player: InvadersPlayer{
			Width:        0.07,
			Height:       0.035,
			BottomMargin: 0.04,
			Nudge:        0.04,
			Cooldown:     0.45,
			ShotSpeed:    0.9,
		},
		Gameplay: InvadersGameplay{
			Lives: 3,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:       20,
			Height:      15,
			StartLength: 3,
		},
		Speed: SnakeSpeed{
			BaseInterval:  0.15,
			PerFruit:      0.06,
			MaxMultiplier: 2.2,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Speed: TetrisSpeed{
			BaseInterval: 0.8,
			MinInterval:  0.08,
			LevelFactor:  0.85,
			LevelScore:   500,
		},
		Scoring: TetrisScoring{
			Lines: []int{40, 100, 300, 1200},
		},
	}
}

// DefaultT2048Config returns the default tile-merge configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		StartTiles:  2,
		FourChance:  0.1,
		TargetValue: 2048,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "engine":
		return defaultEngineYAML
	case "pong":
		return defaultPongYAML
	case "breakout":
		return defaultBreakoutYAML
	case "invaders":
		return defaultInvadersYAML
	case "snake":
		return defaultSnakeYAML
	case "tetris":
		return defaultTetrisYAML
	case "2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
