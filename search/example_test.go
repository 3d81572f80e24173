package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve runs BFS around a short wall with obstacle injection disabled.
// The final grid shows visited cells (o), cells left on the frontier (+) and
// the route (*); the start keeps its Visited mark.
func ExampleSolve() {
	g, _ := gridgraph.Parse(
		".#..",
		".#..",
		"....",
	)
	res, err := search.Solve(search.BFS, g,
		search.Cell{Row: 2, Col: 0}, search.Cell{Row: 0, Col: 3},
		search.WithObstacleProbability(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Outcome, res.Path, res.Edges())
	fmt.Print(g)

	// Output:
	// found [(2,0) (2,1) (1,2) (0,3)] 3
	// o#o*
	// o#*+
	// o*o+
}

////////////////////////////////////////////////////////////////////////////////
// Example: Steps
////////////////////////////////////////////////////////////////////////////////

// ExampleSearch_Steps drives a bidirectional run one step at a time, the way a
// renderer would redraw between steps.
func ExampleSearch_Steps() {
	sess, err := search.NewSession(5, 5,
		search.Cell{Row: 4, Col: 0}, search.Cell{Row: 0, Col: 4},
		search.WithObstacleProbability(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s, _ := sess.Start(search.Bidirectional)

	for ev := range s.Steps() {
		fmt.Println("frontier:", ev.Grid.Snapshot()[0][3])
	}
	fmt.Println(s.Outcome(), s.StepCount(), len(s.Path())-1)

	// Output:
	// frontier: Frontier
	// frontier: Frontier
	// found 2 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: ParseAlgorithm
////////////////////////////////////////////////////////////////////////////////

// ExampleParseAlgorithm maps trigger digits to algorithms.
func ExampleParseAlgorithm() {
	for _, in := range []string{"1", "2", "3", "4", "5", "6"} {
		alg, _ := search.ParseAlgorithm(in)
		fmt.Print(alg, " ")
	}
	fmt.Println()

	// Output:
	// bfs dfs ucs dls iddfs bidirectional
}
