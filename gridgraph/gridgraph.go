package gridgraph

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a Rows×Cols matrix of cell states stored row-major.
// Dimensions never change after New.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// New constructs an all-Empty grid with the given dimensions.
// Returns ErrBadDimensions if rows < 1 or cols < 1.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// State returns the stored state of c. c must be in bounds.
func (g *Grid) State(c Cell) CellState {
	g.mustContain(c)
	return g.cells[g.Index(c)]
}

// SetState overwrites the stored state of c. Nothing beyond bounds is
// validated; an out-of-bounds cell panics.
func (g *Grid) SetState(c Cell, s CellState) {
	g.mustContain(c)
	g.cells[g.Index(c)] = s
}

// IsBlocked reports whether c is currently an Obstacle.
func (g *Grid) IsBlocked(c Cell) bool {
	return g.State(c) == Obstacle
}

// Reset sets every cell back to Empty.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Neighbors returns the in-bounds, non-obstacle cells adjacent to c in Moves
// order. The sequence is lazy: blocked status is read when each neighbor is
// reached, not when Neighbors is called.
func (g *Grid) Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, m := range Moves {
			nb := c.Add(m)
			if !g.InBounds(nb) || g.cells[g.Index(nb)] == Obstacle {
				continue
			}
			if !yield(nb) {
				return
			}
		}
	}
}

// Count returns how many cells are currently in state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}
	return n
}

// Snapshot returns a deep copy of the cell states, indexed [row][col].
func (g *Grid) Snapshot() [][]CellState {
	out := make([][]CellState, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]CellState, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// String renders one line per row using CellState.Rune.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for _, s := range g.cells[r*g.cols : (r+1)*g.cols] {
			b.WriteRune(s.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// View returns a read-only handle over the live grid. It does not copy.
func (g *Grid) View() View {
	return View{g: g}
}

func (g *Grid) mustContain(c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, g.rows, g.cols))
	}
}

// View exposes the cell states of a Grid without allowing mutation.
// It observes the grid live; take a Snapshot to keep a frame.
type View struct {
	g *Grid
}

// Rows returns the number of rows of the underlying grid.
func (v View) Rows() int { return v.g.rows }

// Cols returns the number of columns of the underlying grid.
func (v View) Cols() int { return v.g.cols }

// State returns the current state of c.
func (v View) State(c Cell) CellState { return v.g.State(c) }

// Snapshot returns a deep copy of the current cell states.
func (v View) Snapshot() [][]CellState { return v.g.Snapshot() }

// String renders the current cell states.
func (v View) String() string { return v.g.String() }

// Parse builds a grid from text rows, one string per row. '#' marks an
// Obstacle; every other rune is Empty. All rows must have the same length.
// Returns ErrBadDimensions for empty or ragged input.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	cols := len([]rune(rows[0]))
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadDimensions, r, len(runes), cols)
		}
		for c, ch := range runes {
			if ch == '#' {
				g.cells[r*cols+c] = Obstacle
			}
		}
	}
	return g, nil
}
