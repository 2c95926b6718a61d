package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press B on the pause or game over screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(true)
	defer closeLog()

	store := openStore(logger)
	defer closeStore(store, logger)

	cfg, maxDT := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, ok, err := createGame(menuResult.GameID, cfg, -1)
		if err != nil {
			logger.Error("creating game", "game", menuResult.GameID, "err", err)
			continue
		}
		if !ok {
			continue
		}

		// Fresh seed per game unless pinned on the command line
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "game", menuResult.GameID, "seed", runCfg.Seed)
		if err := tui.Run(game, tui.Options{
			Runtime: runCfg,
			MaxDT:   maxDT,
			Store:   store,
			Logger:  logger.With("game", menuResult.GameID),
		}); err != nil {
			logger.Error("running game", "game", menuResult.GameID, "err", err)
		}
	}
}
