package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Session owns one grid and the fixed start and target of a driver. Every
// Start resets the grid before handing it to the new run, so at most one run
// mutates the grid at a time.
type Session struct {
	grid   *gridgraph.Grid
	start  Cell
	target Cell
	opts   []Option
}

// NewSession builds a rows×cols grid and validates start, target and opts
// up front. opts become the defaults of every run started on the session.
func NewSession(rows, cols int, start, target Cell, opts ...Option) (*Session, error) {
	g, err := gridgraph.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, c := range []Cell{start, target} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %d×%d grid", gridgraph.ErrOutOfBounds, c, rows, cols)
		}
	}
	if _, err = buildOptions(opts); err != nil {
		return nil, err
	}

	return &Session{grid: g, start: start, target: target, opts: slices.Clone(opts)}, nil
}

// Grid returns the session's grid.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Endpoints returns the fixed start and target cells.
func (s *Session) Endpoints() (start, target Cell) { return s.start, s.target }

// Reset clears the grid back to all-Empty.
func (s *Session) Reset() { s.grid.Reset() }

// Start resets the grid and prepares a run of alg. Extra opts are applied
// after the session defaults.
func (s *Session) Start(alg Algorithm, opts ...Option) (*Search, error) {
	s.grid.Reset()
	all := append(slices.Clone(s.opts), opts...)
	return NewSearch(alg, s.grid, s.start, s.target, all...)
}
