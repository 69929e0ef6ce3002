package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// TestConnectedComponents_TwoRegions splits open cells with a wall column.
//
//	S.#..
//	..#.E
//
// Expected: 2 regions of sizes 4 and 4.
func TestConnectedComponents_TwoRegions(t *testing.T) {
	g, err := gridgraph.ParseString("S.#..\n..#.E\n")
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{4, 4}, sizes)
	assert.False(t, g.Connected())
}

// TestConnectedComponents_DiagonalDoesNotJoin checks 4-connectivity only.
//
//	S#
//	#E
func TestConnectedComponents_DiagonalDoesNotJoin(t *testing.T) {
	g, err := gridgraph.ParseString("S#\n#E\n")
	require.NoError(t, err)
	assert.Len(t, g.ConnectedComponents(), 2)
	assert.False(t, g.Connected())
}

func TestConnected_Sample(t *testing.T) {
	g, err := gridgraph.ParseString(sampleMaze)
	require.NoError(t, err)
	assert.True(t, g.Connected())
	assert.Len(t, g.ConnectedComponents(), 1)
}
