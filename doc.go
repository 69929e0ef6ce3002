// Package reindeer finds the cheapest routes through a maze whose walker has
// a facing direction, and reports every tile that lies on at least one of
// them.
//
// A walker stands on an open cell facing North, East, South or West. It may
// step one cell forward (cost 1) or rotate 90 degrees in place (cost 1000).
// The minimal score from Start to End is found by a full Dijkstra pass over
// (row, col, heading) states; a second pass walks backwards from End along
// exact cost deltas and collects every state on any minimal route, so ties
// are never lost.
//
// Packages:
//
//	gridgraph/  - immutable maze, headings, turns, the text format
//	dijkstra/   - forward pass: complete cost table over oriented states
//	backtrack/  - backward pass: every state on some minimal route
//	maze/       - Forward → Backward → Done driver and caller-facing Result
//	config/     - YAML configuration with embedded defaults
//	storage/    - SQLite run history and answer cache
//	render/     - terminal rendering with optimal tiles highlighted
//	tui/        - scrollable Bubble Tea viewer
//	cmd/reindeer - the command-line tool
//
// Quick example:
//
//	#####
//	#..E#
//	#S###
//	#####
//
// Facing east, the walker turns north, steps, turns east and steps twice:
// a score of 2003 over four tiles.
//
//	g, _ := gridgraph.ParseString(text)
//	res, err := maze.Solve(g)
package reindeer
