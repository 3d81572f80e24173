// Package gridsearch is a step-by-step path-search engine for 2D grids whose
// obstacles can appear while the search is running.
//
// 🚀 What is gridsearch?
//
//	A small, deterministic-when-seeded engine that brings together:
//		• Grid model: cell states, 8-way neighbors in a fixed clockwise order
//		• Obstacle injection: a per-step random process that never blocks
//		  the start or the target
//		• Six strategies: BFS, DFS, UCS, depth-limited, iterative deepening
//		  and bidirectional BFS
//		• Path reconstruction from parent links, marked on the grid
//
// ✨ Why a step iterator?
//
//   - A renderer ranges over Steps and redraws between steps
//   - Breaking out of the loop abandons the run, no goroutines involved
//   - Runs with the same seed replay the same frames
//
// Packages:
//
//	gridgraph/        Grid, Cell, CellState, Moves, Parse, connectivity queries
//	obstacles/        Injector, the seedable per-step obstacle spawner
//	search/           Search, Session, Solve, options, outcomes, Reconstruct
//	cmd/gridsearch/   terminal driver that prints frames and the final grid
//
// Quick ASCII example (BFS, ".#.." / ".#.." / "....", (2,0) → (0,3)):
//
//	o#o*
//	o#*+
//	o*o+
//
// Visited cells are o, the frontier left behind is +, the route is *.
//
//	go install github.com/katalvlaran/gridsearch/cmd/gridsearch@latest
package gridsearch
