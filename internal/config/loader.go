package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	selMu     sync.RWMutex
	configDir string
	preset    DifficultyPreset
)

// SetConfigDir sets a directory searched first for <game>.yaml files.
// An empty string disables the override.
func SetConfigDir(dir string) {
	selMu.Lock()
	defer selMu.Unlock()
	configDir = dir
}

// SetPreset selects the difficulty preset applied by the game accessors.
// An empty name clears it.
func SetPreset(name string) error {
	p, err := ParsePreset(name)
	if err != nil {
		return err
	}
	selMu.Lock()
	defer selMu.Unlock()
	preset = p
	return nil
}

// CurrentPreset returns the selected difficulty preset.
func CurrentPreset() DifficultyPreset {
	selMu.RLock()
	defer selMu.RUnlock()
	return preset
}

// overridePath returns <configDir>/<filename> when that file exists.
func overridePath(filename string) string {
	selMu.RLock()
	dir := configDir
	selMu.RUnlock()
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// load decodes a configuration on top of its defaults.
// Search order: customPath -> ~/.arcade/configs/<filename> ->
// ./configs/<filename> -> embedded default -> hardcoded default.
// Only an explicit customPath produces an error; the other locations are
// skipped when missing or malformed.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := decodeFile(path, fallback); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile[T any](path string, fallback func() T) (T, error) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, errors.New("config: empty file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadEngine loads the tick driver configuration.
func LoadEngine(customPath string) (EngineConfig, error) {
	return load(customPath, "engine.yaml", defaultEngineYAML, DefaultEngineConfig)
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load(customPath, "pong.yaml", defaultPongYAML, DefaultPongConfig)
}

// LoadBreakout loads brick breaker configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load(customPath, "breakout.yaml", defaultBreakoutYAML, DefaultBreakoutConfig)
}

// LoadInvaders loads formation game configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load(customPath, "invaders.yaml", defaultInvadersYAML, DefaultInvadersConfig)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load(customPath, "snake.yaml", defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load(customPath, "tetris.yaml", defaultTetrisYAML, DefaultTetrisConfig)
}

// LoadT2048 loads 2048 configuration.
func LoadT2048(customPath string) (T2048Config, error) {
	return load(customPath, "2048.yaml", defaultT2048YAML, DefaultT2048Config)
}

// Engine returns the active driver configuration.
func Engine() EngineConfig {
	cfg, err := LoadEngine(overridePath("engine.yaml"))
	if err != nil {
		return DefaultEngineConfig()
	}
	return cfg
}

// Pong returns the active Pong configuration with the preset applied.
func Pong() PongConfig {
	cfg, err := LoadPong(overridePath("pong.yaml"))
	if err != nil {
		cfg = DefaultPongConfig()
	}
	ApplyPongPreset(&cfg, CurrentPreset())
	return cfg
}

// Breakout returns the active brick breaker configuration.
func Breakout() BreakoutConfig {
	cfg, err := LoadBreakout(overridePath("breakout.yaml"))
	if err != nil {
		cfg = DefaultBreakoutConfig()
	}
	ApplyBreakoutPreset(&cfg, CurrentPreset())
	return cfg
}

// Invaders returns the active formation game configuration.
func Invaders() InvadersConfig {
	cfg, err := LoadInvaders(overridePath("invaders.yaml"))
	if err != nil {
		cfg = DefaultInvadersConfig()
	}
	ApplyInvadersPreset(&cfg, CurrentPreset())
	return cfg
}

// Snake returns the active Snake configuration.
func Snake() SnakeConfig {
	cfg, err := LoadSnake(overridePath("snake.yaml"))
	if err != nil {
		cfg = DefaultSnakeConfig()
	}
	ApplySnakePreset(&cfg, CurrentPreset())
	return cfg
}

// Tetris returns the active Tetris configuration.
func Tetris() TetrisConfig {
	cfg, err := LoadTetris(overridePath("tetris.yaml"))
	if err != nil {
		cfg = DefaultTetrisConfig()
	}
	ApplyTetrisPreset(&cfg, CurrentPreset())
	return cfg
}

// T2048 returns the active 2048 configuration.
func T2048() T2048Config {
	cfg, err := LoadT2048(overridePath("2048.yaml"))
	if err != nil {
		cfg = DefaultT2048Config()
	}
	ApplyT2048Preset(&cfg, CurrentPreset())
	return cfg
}
