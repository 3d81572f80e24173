package gridgraph

import "fmt"

// Default dimensions of the reference configuration.
const (
	DefaultRows = 20
	DefaultCols = 20
)

// Cell is a (row, column) coordinate. It is a comparable value type and is
// used directly as a map key by the search package.
type Cell struct {
	Row, Col int
}

// Add returns the cell reached from c by applying move m.
func (c Cell) Add(m Move) Cell {
	return Cell{Row: c.Row + m.DRow, Col: c.Col + m.DCol}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move is a single step between adjacent cells.
type Move struct {
	DRow, DCol int
}

// Moves is the fixed clockwise adjacency order:
// Up, Up-Right, Right, Down-Right, Down, Down-Left, Left, Up-Left.
// Neighbor enumeration follows this order, so it decides which of several
// equally eligible cells a strategy sees first. Treat it as read-only.
var Moves = [8]Move{
	{-1, 0},  // Up
	{-1, 1},  // Up-Right
	{0, 1},   // Right
	{1, 1},   // Down-Right
	{1, 0},   // Down
	{1, -1},  // Down-Left
	{0, -1},  // Left
	{-1, -1}, // Up-Left
}

// IsMove reports whether b is exactly one step in Moves away from a.
func IsMove(a, b Cell) bool {
	for _, m := range Moves {
		if a.Add(m) == b {
			return true
		}
	}
	return false
}

// CellState is the single state stored for every cell.
type CellState int

const (
	// Empty cells are free and undiscovered.
	Empty CellState = iota
	// Obstacle cells are removed from the neighbor set for the rest of a run.
	Obstacle
	// Frontier cells are discovered but not yet expanded.
	Frontier
	// Visited cells have been expanded.
	Visited
	// Path cells lie on the reconstructed route.
	Path
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Obstacle:
		return "Obstacle"
	case Frontier:
		return "Frontier"
	case Visited:
		return "Visited"
	case Path:
		return "Path"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Rune returns the glyph used by the text rendering of a grid.
func (s CellState) Rune() rune {
	switch s {
	case Obstacle:
		return '#'
	case Frontier:
		return '+'
	case Visited:
		return 'o'
	case Path:
		return '*'
	default:
		return '.'
	}
}
