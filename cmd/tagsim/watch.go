package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/platy/tag-sim/internal/platform/tui"
	"github.com/platy/tag-sim/internal/storage"
)

var flagWatchConfig string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a simulation live",
	Long: `Play the simulation out in the terminal at the configured tick rate.

Controls:
  p/space    - Pause
  n          - Single step (pauses first)
  +/-        - Faster / slower
  r          - Restart with a new seed
  ?          - Toggle full help
  q/Ctrl+C   - Quit

Examples:
  tagsim watch
  tagsim watch --players 8 --seed 42
  tagsim watch --config ./my-tagsim.yaml`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players (0 = from config)")
	watchCmd.Flags().IntVar(&flagSteps, "steps", 0, "Number of steps (0 = from config)")
	watchCmd.Flags().IntVar(&flagWidth, "width", 0, "Field width (0 = from config)")
	watchCmd.Flags().IntVar(&flagHeight, "height", 0, "Field height (0 = from config)")
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom config YAML")
}

func runWatch(cmd *cobra.Command, args []string) error {
	simCfg, cfg, err := simConfig(flagWatchConfig)
	if err != nil {
		return err
	}

	// Warn early when the frame won't fit the terminal.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < simCfg.Field.W+2 || h < simCfg.Field.H+5 {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is small for a %dx%d field\n",
				w, h, simCfg.Field.W, simCfg.Field.H)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the viewer still works
		store = nil
	}

	runErr := tui.Run(simCfg, cfg.Viewer.TickRate, store)

	if store != nil {
		store.Close()
	}

	return runErr
}
