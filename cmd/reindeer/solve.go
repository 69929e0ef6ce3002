package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reindeer/config"
	"github.com/katalvlaran/reindeer/gridgraph"
	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/render"
	"github.com/katalvlaran/reindeer/storage"
)

var (
	flagRender  bool
	flagNoCache bool
	flagHeading string
)

var solveCmd = &cobra.Command{
	Use:   "solve <maze-file>",
	Short: "Solve a maze",
	Long: `Find the lowest score from S to E and count the tiles on every route
that achieves it.

Results are recorded in the run history. When the same maze was already
solved with the same costs and heading, the recorded answer is reused
unless --no-cache is given.

Examples:
  reindeer solve maze.txt
  reindeer solve maze.txt --render
  reindeer solve maze.txt --heading north --no-cache`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagRender, "render", false, "Print the maze with optimal tiles highlighted")
	solveCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Ignore previously recorded runs")
	solveCmd.Flags().StringVar(&flagHeading, "heading", "", "Initial heading: north, east, south, west")
}

// outcome is a solve result, fresh or recalled from history.
type outcome struct {
	Name   string
	Grid   *gridgraph.Grid
	Result maze.Result
	Count  int
	Cached bool
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, logger := mustSetup()
	if flagHeading != "" {
		cfg.Heading = flagHeading
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	useCache := cfg.Storage.Cache && !flagNoCache && !flagRender
	out, err := solveFile(cfg, args[0], store, useCache, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagRender {
		fmt.Println(render.Maze(out.Grid, out.Result.Tiles, renderOptions(cfg)))
		fmt.Println()
	}
	if !out.Result.Found {
		fmt.Println("no path")
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
	fmt.Printf("cost: %d\n", out.Result.MinimalCost)
	fmt.Printf("tiles: %d\n", out.Count)
}

// solveFile parses and solves the maze at path. A run recorded in store for
// the same grid, costs and heading is returned instead when useCache is set.
// Fresh runs are recorded. An unreachable End is not an error: the outcome
// has Result.Found == false.
func solveFile(cfg config.Config, path string, store *storage.Store, useCache bool, logger *log.Logger) (outcome, error) {
	heading, err := cfg.StartHeading()
	if err != nil {
		return outcome{}, err
	}
	g, err := gridgraph.ParseFile(path, gridgraph.WithStartHeading(heading))
	if err != nil {
		return outcome{}, err
	}
	out := outcome{Name: filepath.Base(path), Grid: g}
	hash := storage.HashGrid(g)

	if useCache && store != nil {
		run, ok, err := store.Lookup(hash, cfg.Costs.Move, cfg.Costs.Turn, heading.String())
		if err != nil {
			logger.Warn("history lookup failed", "err", err)
		} else if ok {
			logger.Debug("using recorded run", "id", run.ID, "created", run.CreatedAt)
			out.Result = maze.Result{Found: run.Found, MinimalCost: run.Cost}
			out.Count = run.Tiles
			out.Cached = true
			return out, nil
		}
	}

	res, err := maze.Solve(g,
		maze.WithMoveCost(cfg.Costs.Move),
		maze.WithTurnCost(cfg.Costs.Turn),
		maze.WithLogger(logger),
	)
	switch {
	case errors.Is(err, maze.ErrNoPathFound):
		logger.Info("end is unreachable",
			"regions", len(g.ConnectedComponents()), "connected", g.Connected())
	case err != nil:
		return outcome{}, err
	}
	out.Result = res
	out.Count = res.Count()

	if store != nil {
		_, err := store.SaveRun(storage.Run{
			GridHash: hash,
			Name:     out.Name,
			MoveCost: cfg.Costs.Move,
			TurnCost: cfg.Costs.Turn,
			Heading:  heading.String(),
			Found:    res.Found,
			Cost:     res.MinimalCost,
			Tiles:    out.Count,
		})
		if err != nil {
			logger.Warn("could not record run", "err", err)
		}
	}

	return out, nil
}

// openStore opens run history, or returns nil with a warning when it is
// unavailable. Solving never depends on it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("run history unavailable", "path", cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}

func renderOptions(cfg config.Config) render.Options {
	opts := render.DefaultOptions()
	opts.Color = render.ColorMode(cfg.Render.Color)
	opts.Wall = []rune(cfg.Render.Wall)[0]
	opts.Open = []rune(cfg.Render.Open)[0]
	opts.Tile = []rune(cfg.Render.Tile)[0]
	return opts
}
