package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory so only embedded defaults and
// explicit overrides are visible.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigDir("")
	require.NoError(t, SetPreset(""))
	t.Cleanup(func() {
		SetConfigDir("")
		_ = SetPreset("")
	})
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	pong, err := LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), pong)

	breakout, err := LoadBreakout("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), breakout)

	invaders, err := LoadInvaders("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInvadersConfig(), invaders)

	snake, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), snake)

	tetris, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), tetris)

	t2048, err := LoadT2048("")
	require.NoError(t, err)
	assert.Equal(t, DefaultT2048Config(), t2048)

	engine, err := LoadEngine("")
	require.NoError(t, err)
	assert.Equal(t, DefaultEngineConfig(), engine)
}

func TestCustomPathOverridesOnTopOfDefaults(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "pong.yaml", "gameplay:\n  win_score: 3\n")

	cfg, err := LoadPong(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Gameplay.WinScore)
	assert.Equal(t, DefaultPongConfig().Ball, cfg.Ball, "unset keys keep defaults")
}

func TestCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := writeFile(t, t.TempDir(), "snake.yaml", "grid: [oops")
	cfg, err := LoadSnake(bad)
	assert.ErrorContains(t, err, "failed to parse")
	assert.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestUserConfigBeatsEmbedded(t *testing.T) {
	isolate(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	dir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile(t, dir, "tetris.yaml", "board:\n  width: 12\n")

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Width)
}

func TestConfigDirAndPreset(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, dir, "breakout.yaml", "gameplay:\n  lives: 9\n")
	SetConfigDir(dir)

	assert.Equal(t, 9, Breakout().Gameplay.Lives)

	require.NoError(t, SetPreset("hard"))
	assert.Equal(t, DifficultyHard, CurrentPreset())
	assert.Equal(t, 2, Breakout().Gameplay.Lives, "preset applies after the file")
	assert.Greater(t, Breakout().Ball.Speed, DefaultBreakoutConfig().Ball.Speed)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		p, err := ParsePreset(name)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(name), p)
	}
	_, err := ParsePreset("nightmare")
	assert.ErrorContains(t, err, "unknown difficulty")
	assert.Error(t, SetPreset("nightmare"))
}

func TestNormalPresetIsIdentity(t *testing.T) {
	cfg := DefaultInvadersConfig()
	ApplyInvadersPreset(&cfg, DifficultyNormal)
	assert.Equal(t, DefaultInvadersConfig(), cfg)

	easy := DefaultInvadersConfig()
	ApplyInvadersPreset(&easy, DifficultyEasy)
	assert.Greater(t, easy.Gameplay.Lives, cfg.Gameplay.Lives)
}

func TestDifficultyLevel(t *testing.T) {
	d := DifficultyConfig{InitialLevel: 0.2, MaxAt: 10}
	assert.InDelta(t, 0.2, d.Level(0), 1e-9)
	assert.InDelta(t, 0.6, d.Level(5), 1e-9)
	assert.InDelta(t, 1.0, d.Level(50), 1e-9)
	assert.InDelta(t, 0.2, DifficultyConfig{InitialLevel: 0.2}.Level(99), 1e-9)
	assert.InDelta(t, 1.0, DifficultyConfig{InitialLevel: 3}.Level(0), 1e-9)
}
