package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagSimTicks    int
	flagSimEvery    int
	flagSimRestarts int
	flagSimWidth    int
	flagSimHeight   int
	flagSimYAML     bool
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with scripted input",
	Long: `Run a game without a terminal UI. A seeded script presses a random
game command every few ticks; the final status is printed when the tick
budget runs out or the last run ends.

The same --seed always produces the same result.

Examples:
  arcade sim tetris --seed 1
  arcade sim invaders --ticks 20000 --restarts 3 --yaml
  arcade sim snake --record --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 6, "Ticks between scripted commands")
	simCmd.Flags().IntVar(&flagSimRestarts, "restarts", 0, "Runs to start again after game over")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Virtual terminal width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Virtual terminal height in cells")
	simCmd.Flags().BoolVar(&flagSimYAML, "yaml", false, "Print the result as YAML")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Store finished runs in the scores database")
}

// simOptions configures a headless run.
type simOptions struct {
	Ticks    int
	Every    int
	Restarts int
	Seed     int64
	TickRate int
	MaxDT    float64
	Width    int
	Height   int
	Saver    storage.ScoreSaver
	Logger   *log.Logger
}

// simResult is the final state of a headless run.
type simResult struct {
	Game     string `yaml:"game"`
	Seed     int64  `yaml:"seed"`
	Ticks    int    `yaml:"ticks"`
	Commands int    `yaml:"commands"`
	Runs     int    `yaml:"runs"`
	Phase    string `yaml:"phase"`
	Score    int    `yaml:"score"`
	Best     int    `yaml:"best"`
	Lives    int    `yaml:"lives,omitempty"`
	Level    int    `yaml:"level,omitempty"`
	Wave     int    `yaml:"wave,omitempty"`
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	engineCfg := config.Engine()
	opts := simOptions{
		Ticks:    flagSimTicks,
		Every:    flagSimEvery,
		Restarts: flagSimRestarts,
		Seed:     flagSeed,
		TickRate: engineCfg.TickRate,
		MaxDT:    engineCfg.MaxDT,
		Width:    flagSimWidth,
		Height:   flagSimHeight,
		Logger:   logger,
	}
	if flagFPS > 0 {
		opts.TickRate = flagFPS
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	if flagSimRecord {
		store := openStore(logger)
		defer closeStore(store, logger)
		if store != nil {
			opts.Saver = store
		}
	}

	res, err := simulate(gameID, opts)
	if err != nil {
		return err
	}
	return printSimResult(cmd.OutOrStdout(), res, flagSimYAML)
}

// simulate runs gameID headless for the configured number of ticks.
func simulate(gameID string, opts simOptions) (simResult, error) {
	if opts.Ticks <= 0 {
		return simResult{}, fmt.Errorf("sim: ticks must be positive, got %d", opts.Ticks)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	opts.Every = max(opts.Every, 1)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	sessOpts := []engine.Option{engine.WithSeed(opts.Seed), engine.WithLogger(opts.Logger)}
	if opts.MaxDT > 0 {
		sessOpts = append(sessOpts, engine.WithMaxDT(opts.MaxDT))
	}
	session, err := registry.NewSession(gameID, sessOpts...)
	if err != nil {
		return simResult{}, err
	}
	if opts.Saver != nil {
		storage.NewRecorder(opts.Saver, opts.Logger).Attach(session)
	}

	res := simResult{Game: gameID, Seed: opts.Seed, Runs: 1}
	session.OnEvent(func(e engine.Event) {
		if e.Kind == engine.EventGameOver {
			res.Best = max(res.Best, e.Status.Score)
		}
	})

	session.SetViewport(tui.NewCanvas(opts.Width, opts.Height).Viewport())
	session.Start()

	script := newInputScript(gameID, opts.Seed)
	dt := core.RuntimeConfig{TickRate: opts.TickRate}.Interval()
	for res.Ticks < opts.Ticks {
		if session.Phase() == engine.PhaseGameOver {
			if res.Runs > opts.Restarts {
				break
			}
			session.Reset()
			session.Start()
			res.Runs++
		}

		if res.Ticks%opts.Every == 0 {
			if c, ok := script.next(); ok {
				session.Handle(c)
				res.Commands++
			}
		}
		if err := session.Tick(dt); err != nil {
			return res, err
		}
		res.Ticks++
	}

	st := session.Status()
	res.Phase = st.Phase.String()
	res.Score = st.Score
	res.Best = max(res.Best, st.Score)
	res.Lives = st.Lives
	res.Level = st.Level
	res.Wave = st.Wave
	opts.Logger.Debug("simulation finished", "game", gameID, "ticks", res.Ticks, "runs", res.Runs)
	return res, nil
}

// inputScript draws commands from the repertoire of one game.
type inputScript struct {
	rng      core.Rand
	commands []core.Command
}

func newInputScript(gameID string, seed int64) *inputScript {
	return &inputScript{
		rng:      core.NewRand(seed + 1),
		commands: repertoire(gameID),
	}
}

// next returns the next scripted command. Some draws are idle.
func (s *inputScript) next() (core.Command, bool) {
	if len(s.commands) == 0 || core.Chance(s.rng, 0.25) {
		return core.Command{}, false
	}
	return s.commands[s.rng.Intn(len(s.commands))], true
}

func repertoire(gameID string) []core.Command {
	switch gameID {
	case "pong":
		return []core.Command{core.Nudge(core.DirUp), core.Nudge(core.DirDown)}
	case "breakout", "invaders":
		return []core.Command{
			core.Nudge(core.DirLeft), core.Nudge(core.DirRight),
			core.Simple(core.CmdFire),
		}
	case "snake":
		return []core.Command{core.Simple(core.CmdTurnLeft), core.Simple(core.CmdTurnRight)}
	case "tetris":
		return []core.Command{
			core.Nudge(core.DirLeft), core.Nudge(core.DirRight), core.Nudge(core.DirDown),
			core.Simple(core.CmdRotate), core.Simple(core.CmdRotate),
			core.Simple(core.CmdDrop),
		}
	case "2048":
		return []core.Command{
			core.Move(core.DirUp), core.Move(core.DirDown),
			core.Move(core.DirLeft), core.Move(core.DirRight),
		}
	}
	return nil
}

func printSimResult(w io.Writer, res simResult, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "%s (seed %d)\n", res.Game, res.Seed)
	fmt.Fprintf(w, "  ticks     %d\n", res.Ticks)
	fmt.Fprintf(w, "  commands  %d\n", res.Commands)
	fmt.Fprintf(w, "  runs      %d\n", res.Runs)
	fmt.Fprintf(w, "  phase     %s\n", res.Phase)
	fmt.Fprintf(w, "  score     %d (best %d)\n", res.Score, res.Best)
	if res.Lives > 0 {
		fmt.Fprintf(w, "  lives     %d\n", res.Lives)
	}
	if res.Level > 0 {
		fmt.Fprintf(w, "  level     %d\n", res.Level)
	}
	if res.Wave > 0 {
		fmt.Fprintf(w, "  wave      %d\n", res.Wave)
	}
	return nil
}
