// Package config provides YAML-based configuration loading for the reindeer
// command-line tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the reindeer CLI.
type Config struct {
	Costs   CostsConfig   `yaml:"costs"`
	Heading string        `yaml:"heading"`
	Storage StorageConfig `yaml:"storage"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

// CostsConfig defines the transition costs.
type CostsConfig struct {
	Move int64 `yaml:"move"`
	Turn int64 `yaml:"turn"`
}

// StorageConfig defines where solve runs are recorded.
type StorageConfig struct {
	Path  string `yaml:"path"`
	Cache bool   `yaml:"cache"`
}

// RenderConfig defines how mazes are drawn.
type RenderConfig struct {
	Color string `yaml:"color"` // auto, always, never
	Wall  string `yaml:"wall"`
	Open  string `yaml:"open"`
	Tile  string `yaml:"tile"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Color modes accepted by RenderConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// StartHeading parses the configured heading.
func (c Config) StartHeading() (gridgraph.Heading, error) {
	return gridgraph.ParseHeading(c.Heading)
}

// Validate rejects non-positive costs, unknown headings, color modes and log
// levels, and glyphs that are not exactly one character.
func (c Config) Validate() error {
	if c.Costs.Move <= 0 {
		return fmt.Errorf("%w: costs.move must be positive (%d)", ErrInvalidConfig, c.Costs.Move)
	}
	if c.Costs.Turn <= 0 {
		return fmt.Errorf("%w: costs.turn must be positive (%d)", ErrInvalidConfig, c.Costs.Turn)
	}
	if _, err := c.StartHeading(); err != nil {
		return fmt.Errorf("%w: heading: %v", ErrInvalidConfig, err)
	}
	switch c.Render.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: render.color %q (want auto, always or never)", ErrInvalidConfig, c.Render.Color)
	}
	for name, glyph := range map[string]string{"wall": c.Render.Wall, "open": c.Render.Open, "tile": c.Render.Tile} {
		if len([]rune(glyph)) != 1 {
			return fmt.Errorf("%w: render.%s must be a single character, got %q", ErrInvalidConfig, name, glyph)
		}
	}
	level := strings.ToLower(c.Log.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}

	return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
}
