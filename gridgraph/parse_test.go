package gridgraph_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/gridgraph"
)

const sampleMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

func TestParse_Sample(t *testing.T) {
	g, err := gridgraph.ParseString(sampleMaze)
	require.NoError(t, err)
	assert.Equal(t, 15, g.Rows())
	assert.Equal(t, 15, g.Cols())
	assert.Equal(t, gridgraph.Position{Row: 13, Col: 1}, g.Start())
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 13}, g.End())
	assert.Equal(t, gridgraph.East, g.Heading())
	assert.True(t, g.IsWall(0, 0))
	assert.False(t, g.IsWall(13, 1))
	assert.Equal(t, sampleMaze, g.String(), "String must round-trip the text format")
}

func TestParse_CRLFAndTrailingBlank(t *testing.T) {
	g, err := gridgraph.ParseString("S.\r\n.E\r\n\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
}

func TestParse_StartHeading(t *testing.T) {
	g, err := gridgraph.ParseString("S.E\n", gridgraph.WithStartHeading(gridgraph.North))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.North, g.Heading())
	assert.Equal(t, gridgraph.State{Row: 0, Col: 0, Heading: gridgraph.North}, g.StartState())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"OnlyBlank", "\n\n", gridgraph.ErrEmptyGrid},
		{"Ragged", "S..\n.E\n", gridgraph.ErrNonRectangular},
		{"BlankInside", "S.\n\n.E\n", gridgraph.ErrNonRectangular},
		{"Unknown", "S.x\n..E\n", gridgraph.ErrUnknownCell},
		{"NoStart", "...\n..E\n", gridgraph.ErrMissingStart},
		{"NoEnd", "S..\n...\n", gridgraph.ErrMissingEnd},
		{"TwoStarts", "S.S\n..E\n", gridgraph.ErrDuplicateStart},
		{"TwoEnds", "S.E\n..E\n", gridgraph.ErrDuplicateEnd},
		{"BadHeading", "S.E\n", gridgraph.ErrBadHeading},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []gridgraph.ParseOption
			if tc.name == "BadHeading" {
				opts = append(opts, gridgraph.WithStartHeading(gridgraph.Heading(9)))
			}
			_, err := gridgraph.ParseString(tc.in, opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleMaze), 0o644))

	g, err := gridgraph.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 15, g.Rows())

	_, err = gridgraph.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
