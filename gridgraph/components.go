package gridgraph

// orthogonal lists the four forward-step offsets in heading order.
var orthogonal = headingDeltas

// ConnectedComponents finds all contiguous regions of open cells under
// 4-connectivity, ignoring headings and turn costs.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order from its first cell in row-major scan order.
//
// To convert an index back to (r,c), use Coordinate(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	total := g.rows * g.cols
	seen := make([]bool, total)
	var comps [][]int

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Wall {
				continue
			}
			i0 := g.index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				for _, d := range orthogonal {
					vr, vc := ur+d[0], uc+d[1]
					if !g.Passable(vr, vc) {
						continue
					}
					vi := g.index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Connected reports whether Start and End share a component. A false result
// proves the maze has no path under any heading; a true result says nothing
// about cost.
func (g *Grid) Connected() bool {
	target := g.index(g.end.Row, g.end.Col)
	src := g.index(g.start.Row, g.start.Col)
	for _, comp := range g.ConnectedComponents() {
		has := [2]bool{}
		for _, i := range comp {
			if i == src {
				has[0] = true
			}
			if i == target {
				has[1] = true
			}
		}
		if has[0] || has[1] {
			return has[0] && has[1]
		}
	}

	return false
}
