package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/games/breakout"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

var flagLayout int

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move paddle, cannon, snake or piece; swipe in 2048
  Space        - Fire (Invaders, serve in Breakout), hard drop (Tetris)
  X            - Rotate (Tetris)
  Z/C          - Turn left/right (Snake)
  Enter        - Start/resume
  P/Esc        - Pause
  R            - Restart (paused or after game over)
  B            - Back to menu (when not running)
  Q/Ctrl+C     - Quit

Breakout shows a layout picker unless --layout is given.

Examples:
  arcade play pong
  arcade play invaders --difficulty hard
  arcade play breakout --layout 2
  arcade play tetris --seed 7 --fps 30`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLayout, "layout", -1, "Breakout starting layout (-1 = pick interactively)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	cfg, maxDT := runtimeConfig()
	game, ok, err := createGame(gameID, cfg, flagLayout)
	if err != nil || !ok {
		return err
	}

	store := openStore(logger)
	defer closeStore(store, logger)

	logger.Info("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	if err := tui.Run(game, tui.Options{
		Runtime: cfg,
		MaxDT:   maxDT,
		Store:   store,
		Logger:  logger.With("game", gameID),
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// createGame builds a fresh game. Breakout asks for the starting layout
// when layout is negative; ok is false when the player backed out.
func createGame(gameID string, cfg core.RuntimeConfig, layout int) (engine.Game, bool, error) {
	if gameID != "breakout" {
		game, err := registry.Create(gameID)
		return game, err == nil, err
	}

	if layout < 0 {
		picked, ok, err := tui.RunBreakoutLayoutSelector(cfg)
		if err != nil || !ok {
			return nil, false, err
		}
		layout = picked
	}
	if layout >= breakout.LayoutCount() {
		return nil, false, fmt.Errorf("breakout layout %d out of range (0-%d)", layout, breakout.LayoutCount()-1)
	}
	return tui.NewBreakoutAt(layout), true, nil
}
