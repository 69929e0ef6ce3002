// reindeer finds the cheapest routes through a maze where turning costs
// far more than stepping, and counts every tile that lies on one of them.
//
// Usage:
//
//	reindeer solve <maze-file>    - Print the minimal cost and optimal tile count
//	reindeer view <maze-file>     - Browse the maze with optimal tiles highlighted
//	reindeer history              - List recent solves
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.reindeer/config.yaml)
//	--db <path>         - Run history database (default from config)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/reindeer/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reindeer",
	Short: "Reindeer maze - cheapest routes when turning is expensive",
	Long: `Reindeer solves mazes where every step forward costs 1 point and every
90 degree turn costs 1000 points. It reports the lowest possible score and
how many tiles lie on at least one route achieving it.

Maze files use '#' for walls, '.' for open floor, 'S' for the start and
'E' for the end. The reindeer starts facing east unless told otherwise.

Examples:
  reindeer solve maze.txt
  reindeer solve maze.txt --render
  reindeer view maze.txt
  reindeer history --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = strings.ToLower(flagLogLevel)
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// newLogger builds the stderr logger used by every command.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reindeer",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// mustSetup loads config and logger or exits.
func mustSetup() (config.Config, *log.Logger) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg, newLogger(cfg.Log.Level)
}
