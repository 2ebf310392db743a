package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/platy/tag-sim/internal/config"
	"github.com/platy/tag-sim/internal/core"
	"github.com/platy/tag-sim/internal/game"
	"github.com/platy/tag-sim/internal/sim"
	"github.com/platy/tag-sim/internal/storage"
	"github.com/platy/tag-sim/internal/viewer"
)

var (
	flagPlayers int
	flagSteps   int
	flagWidth   int
	flagHeight  int
	flagConfig  string
	flagFrames  bool
	flagQuiet   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation headless",
	Long: `Run a full simulation and print the result.

By default tag events are logged as they happen and the final frame is
printed. With --frames every step's frame is printed, matching the live
viewer's output.

Flags left unset fall back to the config file, then to the defaults
(5 players, 100 steps, 40x20 field).

Examples:
  tagsim run
  tagsim run --players 8 --steps 200
  tagsim run --seed 42 --frames
  tagsim run --config ./my-tagsim.yaml --quiet`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players (0 = from config)")
	runCmd.Flags().IntVar(&flagSteps, "steps", 0, "Number of steps (0 = from config)")
	runCmd.Flags().IntVar(&flagWidth, "width", 0, "Field width (0 = from config)")
	runCmd.Flags().IntVar(&flagHeight, "height", 0, "Field height (0 = from config)")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	runCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print a frame for every step")
	runCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress frames and per-tag logging")
}

// simConfig merges config file values with CLI flag overrides.
func simConfig(configPath string) (sim.Config, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return sim.Config{}, cfg, err
	}

	players := cfg.Sim.Players
	if flagPlayers != 0 {
		players = flagPlayers
	}
	steps := cfg.Sim.Steps
	if flagSteps != 0 {
		steps = flagSteps
	}
	width := cfg.Field.Width
	if flagWidth != 0 {
		width = flagWidth
	}
	height := cfg.Field.Height
	if flagHeight != 0 {
		height = flagHeight
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return sim.Config{
		Players: players,
		Steps:   steps,
		Field:   core.NewField(width, height),
		Seed:    seed,
	}, cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tagsim"})

	simCfg, _, err := simConfig(flagConfig)
	if err != nil {
		return err
	}

	s, err := sim.New(simCfg)
	if err != nil {
		return err
	}

	logger.Info("starting run",
		"players", simCfg.Players,
		"steps", simCfg.Steps,
		"field", fmt.Sprintf("%dx%d", simCfg.Field.W, simCfg.Field.H),
		"seed", simCfg.Seed,
	)

	r := viewer.New(simCfg.Field)
	var lastFrame sim.Frame

	s.Run(sim.ObserverFunc(func(f sim.Frame) {
		lastFrame = f
		for _, tag := range f.Tags {
			if !flagQuiet {
				logger.Info("tag", "step", f.Step, "tagger", tag.Tagger, "tagged", tag.Tagged)
			}
		}
		if flagFrames && !flagQuiet {
			fmt.Println(r.FrameString(f, simCfg.Steps))
		}
	}))

	if !flagFrames && !flagQuiet {
		fmt.Println(r.FrameString(lastFrame, simCfg.Steps))
	}

	finalIt := 0
	for _, p := range lastFrame.Players {
		if p.Role == game.It {
			finalIt = p.Player
		}
	}
	logger.Info("run finished", "tags", s.TagCount(), "final_it", finalIt)

	// Record the run; the simulation result stands even if storage fails.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return nil
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunEntry{
		Players:     simCfg.Players,
		Steps:       simCfg.Steps,
		FieldWidth:  simCfg.Field.W,
		FieldHeight: simCfg.Field.H,
		Seed:        simCfg.Seed,
		Tags:        s.TagCount(),
		FinalIt:     finalIt,
	}); err != nil {
		logger.Warn("could not record run", "error", err)
	}

	return nil
}
