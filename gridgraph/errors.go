package gridgraph

import "errors"

var (
	// ErrBadDimensions indicates a grid with no rows or no columns was requested.
	ErrBadDimensions = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
