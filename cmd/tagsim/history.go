package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/platy/tag-sim/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded runs",
	Long: `Display the most recent simulation runs from the run-history database.

Examples:
  tagsim history
  tagsim history --limit 25`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tagsim run' to record the first one!")
		return
	}

	fmt.Printf("  %-6s  %-7s  %-6s  %-8s  %-20s  %-5s  %-8s  %s\n",
		"ID", "Players", "Steps", "Field", "Seed", "Tags", "Final It", "Date")
	fmt.Printf("  %-6s  %-7s  %-6s  %-8s  %-20s  %-5s  %-8s  %s\n",
		"--", "-------", "-----", "-----", "----", "----", "--------", "----")

	for _, entry := range runs {
		fmt.Printf("  %-6d  %-7d  %-6d  %-8s  %-20d  %-5d  %-8d  %s\n",
			entry.ID, entry.Players, entry.Steps,
			fmt.Sprintf("%dx%d", entry.FieldWidth, entry.FieldHeight),
			entry.Seed, entry.Tags, entry.FinalIt,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
