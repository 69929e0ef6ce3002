package maze_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reindeer/gridgraph"
	"github.com/katalvlaran/reindeer/maze"
)

// ExampleSolve solves the first reference maze.
func ExampleSolve() {
	g, err := gridgraph.ParseString(firstSample)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := maze.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.MinimalCost, res.Count())
	// Output: 7036 45
}

// ExampleSolve_noPath shows the explicit unreachable outcome.
func ExampleSolve_noPath() {
	g, _ := gridgraph.ParseString("S#E\n")
	_, err := maze.Solve(g)
	fmt.Println(errors.Is(err, maze.ErrNoPathFound))
	// Output: true
}

// ExampleSolver walks the phases one at a time.
func ExampleSolver() {
	g, _ := gridgraph.ParseString("S.\n#.\n#E\n")
	s, _ := maze.NewSolver(g)
	fmt.Println(s.Phase())
	_ = s.Forward()
	fmt.Println(s.Phase())
	_ = s.Backward()
	res, _ := s.Result()
	fmt.Println(s.Phase(), res.MinimalCost, res.Tiles)
	// Output:
	// forward
	// backward
	// done 1003 [(0,0) (0,1) (1,1) (2,1)]
}
