// Package gridgraph models an oriented maze: an immutable 2D grid of open
// and wall cells with a designated Start cell, an initial Heading and an End
// cell. It is the shared read-only input of the dijkstra and backtrack
// packages.
//
// What:
//
//   - Grid wraps a rectangular [][]CellKind and is deep-copied on construction.
//   - Heading is one of four cardinal directions in clockwise cyclic order;
//     Left and Right rotate one step without moving.
//   - State is the (row, col, heading) triple the search algorithms operate on.
//   - StateIndex gives every State a dense slot in [0, 4·R·C), so cost tables
//     can be plain slices.
//   - Parse reads the text format ('#' wall, '.' open, 'S' start, 'E' end).
//
// Complexity:
//
//   - NewGrid / Parse:      O(R×C) time and memory.
//   - InBounds / IsWall:    O(1).
//   - ConnectedComponents:  O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed cell matrix.
//   - ErrUnknownCell: unrecognised character in the text format.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateStart, ErrDuplicateEnd.
//   - ErrStartOutOfBounds, ErrEndOutOfBounds, ErrStartOnWall, ErrEndOnWall.
//   - ErrBadHeading: heading outside North..West.
//
// All of the above belong to the "invalid grid" family and are raised at
// construction time; a Grid that exists is always well formed.
package gridgraph
