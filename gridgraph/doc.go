// Package gridgraph models a fixed-size 2D grid of cell states as an
// 8-connected graph for step-by-step path search.
//
// What:
//
//   - Grid stores exactly one CellState per cell: Empty, Obstacle, Frontier,
//     Visited or Path.
//   - Neighbors lazily enumerates the in-bounds, non-obstacle cells around a
//     cell in the fixed clockwise Moves order.
//   - Reset, Snapshot and View support a driver that redraws the grid between
//     search steps.
//   - ConnectedComponents and Reachable answer connectivity questions over the
//     non-obstacle cells.
//
// Ordering:
//
//	Moves = Up, Up-Right, Right, Down-Right, Down, Down-Left, Left, Up-Left.
//	Every traversal in this module sees neighbors in that order, which makes
//	runs reproducible and decides tie-breaks between equal-length routes.
//
// Complexity:
//
//   - Neighbors:           O(8) per cell.
//   - Reset, Snapshot:     O(R×C).
//   - ConnectedComponents: O(R×C×8), Memory: O(R×C).
//
// Errors:
//
//   - ErrBadDimensions: New was called with rows < 1 or cols < 1.
//   - ErrOutOfBounds:   wrapped in the panic raised by SetState for a cell
//     outside the grid (a programming error, not a recoverable condition).
//
// A Grid is not safe for concurrent use; one search run owns it at a time.
package gridgraph
