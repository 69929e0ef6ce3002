package config

import (
	_ "embed"
)

//go:embed defaults/reindeer.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Costs:   CostsConfig{Move: 1, Turn: 1000},
		Heading: "east",
		Storage: StorageConfig{Path: "~/.reindeer/runs.db", Cache: true},
		Render:  RenderConfig{Color: ColorAuto, Wall: "#", Open: ".", Tile: "O"},
		Log:     LogConfig{Level: "info"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
