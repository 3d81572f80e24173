// Package search runs step-by-step path searches over a gridgraph.Grid.
//
// What:
//
//   - Six strategies between a fixed start and a fixed target:
//     BFS, DFS, UCS, DLS, IDDFS and Bidirectional BFS.
//   - Every step injects at most one random obstacle, pops one frontier cell,
//     either finishes on the target or expands the cell's unvisited neighbors,
//     and then yields a StepEvent to the driver ranging over Steps.
//   - On success the route is marked Path on the grid and reported in
//     Result.Path, ordered start→target.
//
// Strategies:
//
//	BFS           FIFO frontier, visited on discovery      shortest in moves
//	DFS           LIFO frontier, visited on discovery      any route
//	UCS           min-cost frontier, re-opens on cheaper   shortest in moves
//	DLS           DFS that stops expanding at DepthLimit   any route ≤ limit
//	IDDFS         DLS with limits 1, 2, … until Found      may miss the BFS length
//	Bidirectional two BFS waves that stop when they touch  any route
//
// Options:
//
//   - WithObstacleProbability(p): per-step spawn chance in [0,1], default 0.02.
//   - WithDepthLimit(d): DLS bound, d ≥ 0, default 20.
//   - WithSeed / WithRand: make obstacle placement replayable.
//   - WithOnStep / WithOnObstacle: observe the run without ranging.
//
// Cancellation:
//
//	There is no token. The driver abandons a run by breaking out of the
//	range loop; the grid keeps whatever marks it had at that step and the
//	Outcome stays Pending.
//
// Errors:
//
//   - ErrNilGrid, ErrUnknownAlgorithm, ErrOptionViolation and a wrapped
//     gridgraph.ErrOutOfBounds are returned by NewSearch and NewSession.
//   - ErrAlreadyRun is reported by Err when Steps is ranged a second time.
//   - Found and Exhausted are outcomes, never errors.
//
// A Search mutates its grid and is not safe for concurrent use.
package search
