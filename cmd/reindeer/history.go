package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reindeer/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent solves",
	Long: `List the most recent solves recorded in the run history database.

Examples:
  reindeer history
  reindeer history --limit 25`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, _ := mustSetup()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.Recent(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'reindeer solve <maze-file>' to record one.")
		return
	}

	fmt.Printf("  %-5s  %-20s  %-10s  %-6s  %-16s  %s\n", "ID", "Maze", "Cost", "Tiles", "Costs/Heading", "Date")
	fmt.Printf("  %-5s  %-20s  %-10s  %-6s  %-16s  %s\n", "--", "----", "----", "-----", "-------------", "----")

	for _, r := range runs {
		cost := "no path"
		tiles := "-"
		if r.Found {
			cost = fmt.Sprintf("%d", r.Cost)
			tiles = fmt.Sprintf("%d", r.Tiles)
		}
		params := fmt.Sprintf("%d/%d %s", r.MoveCost, r.TurnCost, r.Heading)
		fmt.Printf("  %-5d  %-20s  %-10s  %-6s  %-16s  %s\n",
			r.ID, truncate(r.Name, 20), cost, tiles, params, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
