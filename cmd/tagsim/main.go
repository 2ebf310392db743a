// tagsim is a turn-based simulation of the children's game tag.
//
// Usage:
//
//	tagsim run               - Run a simulation and print frames
//	tagsim watch             - Watch a simulation live in the terminal
//	tagsim serve             - Serve the live viewer over SSH
//	tagsim history           - Show recently recorded runs
//
// Global flags:
//
//	--seed <value>  - Set placement seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.tagsim/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tagsim",
	Short: "Agent-driven simulation of the game tag",
	Long: `tagsim simulates a game of tag on a bounded field: one player is "it"
and chases, everyone else runs away, and roles swap on every tag.

Available commands:
  run      - Run a simulation headless and print frames
  watch    - Watch a simulation play out live in the terminal
  serve    - Start an SSH server so others can watch remotely
  history  - Show recently recorded runs

Examples:
  tagsim run --players 5 --steps 100
  tagsim run --seed 42 --frames
  tagsim watch
  tagsim serve --ssh :2222
  tagsim history`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Placement seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tagsim/runs.db", "Path to run-history database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
