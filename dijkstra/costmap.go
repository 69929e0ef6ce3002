package dijkstra

import (
	"math"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// unrecorded marks a state the search never reached. It never leaves this
// package: Cost reports it as ok == false.
const unrecorded = math.MaxInt64

// CostMap is a dense table from State to the minimal known cost of reaching
// it, indexed by gridgraph.Grid.StateIndex.
type CostMap struct {
	grid *gridgraph.Grid
	dist []int64
}

// newCostMap allocates a table with every state unrecorded.
func newCostMap(g *gridgraph.Grid) *CostMap {
	dist := make([]int64, g.NumStates())
	for i := range dist {
		dist[i] = unrecorded
	}

	return &CostMap{grid: g, dist: dist}
}

// Grid returns the grid the table was built for.
func (m *CostMap) Grid() *gridgraph.Grid { return m.grid }

// Len returns the number of slots, 4·R·C.
func (m *CostMap) Len() int { return len(m.dist) }

// Cost returns the recorded cost of s. ok is false when s is out of bounds,
// has an invalid heading, or was never reached.
func (m *CostMap) Cost(s gridgraph.State) (cost int64, ok bool) {
	if !m.grid.InBounds(s.Row, s.Col) || !s.Heading.Valid() {
		return 0, false
	}

	return m.CostAt(m.grid.StateIndex(s))
}

// CostAt is Cost addressed by dense state index.
func (m *CostMap) CostAt(idx int) (cost int64, ok bool) {
	if idx < 0 || idx >= len(m.dist) {
		return 0, false
	}
	d := m.dist[idx]
	if d == unrecorded {
		return 0, false
	}

	return d, true
}

// Recorded returns how many states have a cost.
func (m *CostMap) Recorded() int {
	n := 0
	for _, d := range m.dist {
		if d != unrecorded {
			n++
		}
	}

	return n
}

// Equal reports whether two tables hold identical costs for identical slots.
func (m *CostMap) Equal(other *CostMap) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.dist) != len(other.dist) {
		return false
	}
	for i := range m.dist {
		if m.dist[i] != other.dist[i] {
			return false
		}
	}

	return true
}

// improve records cost for idx when it is strictly lower than the current
// value. Values only ever decrease.
func (m *CostMap) improve(idx int, cost int64) bool {
	if cost >= m.dist[idx] {
		return false
	}
	m.dist[idx] = cost

	return true
}
