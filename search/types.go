package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/obstacles"
)

// Cell is the grid coordinate type shared with gridgraph.
type Cell = gridgraph.Cell

// DefaultDepthLimit is the depth bound used by DLS when none is configured.
const DefaultDepthLimit = 20

// Sentinel errors for search construction.
var (
	// ErrNilGrid is returned when a nil grid is passed to NewSearch.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name or value.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrAlreadyRun is reported by Err when Steps is ranged over a second time.
	ErrAlreadyRun = errors.New("search: run already started")
)

// Algorithm selects one of the six search strategies.
type Algorithm int

const (
	// BFS expands the oldest frontier cell first.
	BFS Algorithm = iota + 1
	// DFS expands the newest frontier cell first.
	DFS
	// UCS expands the cheapest frontier cell first, re-opening cells when a
	// cheaper route to them is found.
	UCS
	// DLS is DFS that stops expanding at a configured depth.
	DLS
	// IDDFS runs DLS with limits 1, 2, 3, … until the target is popped.
	IDDFS
	// Bidirectional runs two BFS waves, from start and from target, until
	// they touch.
	Bidirectional
)

// Algorithms lists every algorithm in trigger order (1..6).
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, DLS, IDDFS, Bidirectional}
}

// String returns the short lowercase name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case UCS:
		return "ucs"
	case DLS:
		return "dls"
	case IDDFS:
		return "iddfs"
	case Bidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// valid reports whether a names one of the six strategies.
func (a Algorithm) valid() bool {
	return a >= BFS && a <= Bidirectional
}

// ParseAlgorithm maps a name ("bfs", "dfs", "ucs", "dls", "iddfs", "bidi" or
// "bidirectional") or a trigger digit ("1".."6") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "bfs":
		return BFS, nil
	case "2", "dfs":
		return DFS, nil
	case "3", "ucs":
		return UCS, nil
	case "4", "dls":
		return DLS, nil
	case "5", "iddfs":
		return IDDFS, nil
	case "6", "bidi", "bidirectional":
		return Bidirectional, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Outcome is the terminal result of a run. Both Found and Exhausted are
// normal results.
type Outcome int

const (
	// Pending means the run has not finished: it was never started or the
	// driver stopped pulling steps.
	Pending Outcome = iota
	// Found means the target was reached.
	Found
	// Exhausted means the frontier emptied without reaching the target.
	Exhausted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// StepEvent is emitted once per expansion step, when the grid is in a stable
// state. Grid observes the live grid; it is valid to read until the next step
// is requested.
type StepEvent struct {
	Grid gridgraph.View
}

// Result summarizes a finished (or abandoned) run.
type Result struct {
	Algorithm Algorithm
	Outcome   Outcome
	// Path is the route start→target including both ends; nil unless Found.
	Path []Cell
	// Steps counts emitted StepEvents.
	Steps int
	// Obstacles counts cells turned into obstacles during the run.
	Obstacles int
	// DepthLimit is the last limit applied (DLS and IDDFS only).
	DepthLimit int
}

// Edges returns the number of moves along Path, or -1 if there is no path.
func (r Result) Edges() int {
	if len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by
// NewSearch or NewSession.
type Option func(*Options)

// Options holds the parameters of a run.
type Options struct {
	// ObstacleProbability is the chance, per step, that a random cell turns
	// into an obstacle. Must lie in [0,1].
	ObstacleProbability float64

	// DepthLimit bounds DLS. Must be ≥ 0.
	DepthLimit int

	// Rand drives obstacle placement. When nil a generator seeded with Seed
	// is created.
	Rand *rand.Rand

	// Seed seeds the generator when Rand is nil.
	Seed uint64

	// OnStep is called at every step boundary, before the StepEvent is
	// handed to the ranging driver.
	OnStep func(StepEvent)

	// OnObstacle is called for every cell newly turned into an obstacle.
	OnObstacle func(Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - ObstacleProbability = 0.02
//   - DepthLimit = 20
//   - a time-based Seed
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		ObstacleProbability: obstacles.DefaultProbability,
		DepthLimit:          DefaultDepthLimit,
		Seed:                uint64(time.Now().UnixNano()),
		OnStep:              func(StepEvent) {},
		OnObstacle:          func(Cell) {},
	}
}

// WithObstacleProbability sets the per-step obstacle spawn chance.
// Values outside [0,1] are recorded as ErrOptionViolation.
func WithObstacleProbability(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			o.err = fmt.Errorf("%w: obstacle probability must lie in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.ObstacleProbability = p
	}
}

// WithDepthLimit sets the DLS depth bound.
//
//	d ≥ 0: expansion stops at depth d (0 expands nothing)
//	d < 0: invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithSeed seeds the obstacle generator, making runs with obstacles replayable.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand supplies the obstacle generator directly. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnStep registers a callback run at every step boundary.
func WithOnStep(fn func(StepEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnObstacle registers a callback run for every spawned obstacle.
func WithOnObstacle(fn func(Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnObstacle = fn
		}
	}
}

// buildOptions applies opts over the defaults and returns the first
// recorded violation, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Seed))
	}
	return o, nil
}
