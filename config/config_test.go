package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reindeer/gridgraph"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_CustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("costs:\n  turn: 5\nheading: north\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cfg.Costs.Move, "unset keys keep their defaults")
	assert.EqualValues(t, 5, cfg.Costs.Turn)
	h, err := cfg.StartHeading()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.North, h)
}

func TestLoad_CustomErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("costs: [1, 2\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("costs:\n  move: 0\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"TurnCost", func(c *Config) { c.Costs.Turn = -1 }},
		{"Heading", func(c *Config) { c.Heading = "sideways" }},
		{"Color", func(c *Config) { c.Render.Color = "rainbow" }},
		{"Glyph", func(c *Config) { c.Render.Tile = "OO" }},
		{"EmptyGlyph", func(c *Config) { c.Render.Wall = "" }},
		{"LogLevel", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := Default()
	cfg.Log.Level = "DEBUG"
	cfg.Render.Tile = "●"
	assert.NoError(t, cfg.Validate())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.reindeer/runs.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".reindeer/runs.db"), got)

	got, err = ExpandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}
