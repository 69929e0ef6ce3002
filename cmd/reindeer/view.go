package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/reindeer/render"
	"github.com/katalvlaran/reindeer/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view <maze-file>",
	Short: "Browse a solved maze",
	Long: `Solve the maze and open a scrollable view with every optimal tile
highlighted.

Controls:
  Arrows/hjkl  - Scroll
  g/G          - Top/bottom
  Q/Esc        - Quit

Examples:
  reindeer view maze.txt
  reindeer view maze.txt --heading north`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagHeading, "heading", "", "Initial heading: north, east, south, west")
}

func runView(cmd *cobra.Command, args []string) {
	cfg, logger := mustSetup()
	if flagHeading != "" {
		cfg.Heading = flagHeading
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	// Tiles are needed for highlighting, so history is only written here.
	out, err := solveFile(cfg, args[0], store, false, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	content := render.Maze(out.Grid, out.Result.Tiles, renderOptions(cfg))
	model := tui.NewViewerModel(content, tui.Summary{
		Name:  out.Name,
		Found: out.Result.Found,
		Cost:  out.Result.MinimalCost,
		Tiles: out.Count,
	}, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
