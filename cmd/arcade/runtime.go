package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// runtimeConfig builds the terminal runtime settings from the flags, the
// engine config and the current terminal size.
func runtimeConfig() (core.RuntimeConfig, float64) {
	engineCfg := config.Engine()

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.Seed = flagSeed
	if engineCfg.TickRate > 0 {
		cfg.TickRate = engineCfg.TickRate
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, engineCfg.MaxDT
}

// newLogger returns the command logger. While a TUI owns the terminal the
// log goes to ~/.arcade/arcade.log; the returned closer releases the file.
func newLogger(toFile bool) (*log.Logger, func()) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if toFile {
		w = io.Discard
		path := expandHome("~/.arcade/arcade.log")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				w = f
				closer = func() { _ = f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "arcade",
	})
	return logger, closer
}

// openStore opens the score database. A failure is logged and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "err", err)
	}
}
