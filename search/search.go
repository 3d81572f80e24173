package search

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/obstacles"
)

// strategy is the per-algorithm policy plugged into the shared step loop.
type strategy struct {
	// newFrontier builds an empty frontier with the algorithm's pop rule.
	newFrontier func() frontier
	// costed admits a neighbor when its route cost improves, instead of
	// admitting it once through a visited set.
	costed bool
}

// strategyFor maps an algorithm tag to its frontier and admission policy.
// IDDFS reuses the DLS policy; Bidirectional drives its own loop.
func strategyFor(a Algorithm) strategy {
	switch a {
	case BFS, Bidirectional:
		return strategy{newFrontier: newFIFO}
	case UCS:
		return strategy{newFrontier: newCheapest, costed: true}
	default: // DFS, DLS, IDDFS
		return strategy{newFrontier: newLIFO}
	}
}

// Search is a single run of one algorithm between a start and a target.
type Search struct {
	alg    Algorithm
	grid   *gridgraph.Grid
	start  Cell
	target Cell
	opts   Options
	inj    *obstacles.Injector

	started bool
	err     error
	outcome Outcome
	path    []Cell
	steps   int
	limit   int
}

// NewSearch validates its inputs and prepares a run. Nothing is mutated until
// Steps is ranged over.
// Returns ErrNilGrid, ErrUnknownAlgorithm, gridgraph.ErrOutOfBounds for a
// start or target outside the grid, or ErrOptionViolation.
func NewSearch(alg Algorithm, g *gridgraph.Grid, start, target Cell, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !alg.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	for _, c := range []Cell{start, target} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %d×%d grid", gridgraph.ErrOutOfBounds, c, g.Rows(), g.Cols())
		}
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	inj, err := obstacles.New(o.ObstacleProbability, o.Rand, start, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	return &Search{
		alg:    alg,
		grid:   g,
		start:  start,
		target: target,
		opts:   o,
		inj:    inj,
		limit:  o.DepthLimit,
	}, nil
}

// Algorithm returns the algorithm this run executes.
func (s *Search) Algorithm() Algorithm { return s.alg }

// Steps returns the step sequence of the run. Each StepEvent is yielded once
// the grid is stable; breaking out of the range loop abandons the run and
// leaves Outcome at Pending. A Search runs once: ranging again yields nothing
// and sets Err to ErrAlreadyRun.
func (s *Search) Steps() iter.Seq[StepEvent] {
	return func(yield func(StepEvent) bool) {
		if s.started {
			s.err = ErrAlreadyRun
			return
		}
		s.started = true
		emit := func() bool {
			s.steps++
			ev := StepEvent{Grid: s.grid.View()}
			s.opts.OnStep(ev)
			return yield(ev)
		}
		s.outcome = s.run(emit)
	}
}

// Run drains Steps and returns the Result.
func (s *Search) Run() Result {
	for range s.Steps() {
	}
	return s.Result()
}

// Outcome returns the terminal outcome, or Pending if the run is unfinished.
func (s *Search) Outcome() Outcome { return s.outcome }

// Path returns the route start→target, nil unless Found.
func (s *Search) Path() []Cell { return s.path }

// StepCount returns how many StepEvents have been emitted.
func (s *Search) StepCount() int { return s.steps }

// Err reports misuse of the run, currently only ErrAlreadyRun.
func (s *Search) Err() error { return s.err }

// Result summarizes the run so far.
func (s *Search) Result() Result {
	r := Result{
		Algorithm: s.alg,
		Outcome:   s.outcome,
		Path:      s.path,
		Steps:     s.steps,
		Obstacles: s.inj.Spawned(),
	}
	if s.alg == DLS || s.alg == IDDFS {
		r.DepthLimit = s.limit
	}
	return r
}

// Solve runs alg to completion without observing intermediate steps.
func Solve(alg Algorithm, g *gridgraph.Grid, start, target Cell, opts ...Option) (Result, error) {
	s, err := NewSearch(alg, g, start, target, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}

// run dispatches on the algorithm tag.
func (s *Search) run(emit func() bool) Outcome {
	switch s.alg {
	case DLS:
		return s.walk(strategyFor(DLS), s.opts.DepthLimit, emit)
	case IDDFS:
		return s.deepen(emit)
	case Bidirectional:
		return s.bidirectional(emit)
	default:
		return s.walk(strategyFor(s.alg), -1, emit)
	}
}

// inject performs the once-per-step obstacle attempt.
func (s *Search) inject() {
	if c, ok := s.inj.MaybeSpawn(s.grid); ok {
		s.opts.OnObstacle(c)
	}
}

// mark sets c to st unless c has become an obstacle, which never reverts.
func (s *Search) mark(c Cell, st gridgraph.CellState) {
	if !s.grid.IsBlocked(c) {
		s.grid.SetState(c, st)
	}
}

// walk is the step loop shared by BFS, DFS, UCS and DLS. limit < 0 disables
// the depth bound. A popped cell is not re-checked for having become an
// obstacle while queued; only neighbor enumeration skips obstacles.
func (s *Search) walk(st strategy, limit int, emit func() bool) Outcome {
	parent := make(map[Cell]Cell)
	visited := mapset.New[Cell]()
	cost := map[Cell]int{s.start: 0}
	admit := func(c Cell, price int) bool {
		if st.costed {
			if old, seen := cost[c]; seen && price >= old {
				return false
			}
			cost[c] = price
			return true
		}
		if visited.Has(c) {
			return false
		}
		visited.Put(c)
		return true
	}

	// 1) Seed the frontier with the start at depth 0.
	f := st.newFrontier()
	visited.Put(s.start)
	f.push(node{cell: s.start})

	for !f.empty() {
		// 2) One obstacle attempt, then pop without re-checking the cell.
		s.inject()
		cur := f.pop()

		// 3) Target popped: rebuild the route and stop.
		if cur.cell == s.target {
			s.path = Reconstruct(s.grid, parent, s.target)
			if s.path == nil {
				s.path = []Cell{s.start}
			}
			return Found
		}

		// 4) Expand within the depth bound; Neighbors skips obstacles.
		if limit < 0 || cur.depth < limit {
			for nb := range s.grid.Neighbors(cur.cell) {
				next := node{cell: nb, depth: cur.depth + 1, cost: cur.cost + 1}
				if !admit(nb, next.cost) {
					continue
				}
				parent[nb] = cur.cell
				f.push(next)
				s.grid.SetState(nb, gridgraph.Frontier)
			}
		}

		// 5) Close the cell and hand the stable grid to the driver.
		s.mark(cur.cell, gridgraph.Visited)
		if !emit() {
			return Pending
		}
	}

	return Exhausted
}

// deepen runs DLS with limits 1..R×C−1 and returns at the first Found, so
// Result.DepthLimit is the limit that reached the target. Limits above it are
// never tried. The grid is not reset between limits, so marks and obstacles
// carry over; visited and parent state start fresh for every limit.
func (s *Search) deepen(emit func() bool) Outcome {
	last := max(s.grid.Size()-1, 1)
	dls := strategyFor(IDDFS)
	for limit := 1; limit <= last; limit++ {
		s.limit = limit
		if out := s.walk(dls, limit, emit); out != Exhausted {
			return out
		}
	}
	return Exhausted
}

// wave is one side of a bidirectional run.
type wave struct {
	frontier *queue.Queue[Cell]
	visited  mapset.Set[Cell]
	parent   map[Cell]Cell
}

func newWave(root Cell) *wave {
	w := &wave{
		frontier: queue.New[Cell](),
		visited:  mapset.New[Cell](),
		parent:   make(map[Cell]Cell),
	}
	w.frontier.Enqueue(root)
	w.visited.Put(root)
	return w
}

// bidirectional alternates one expansion from the start wave and one from the
// target wave per step. It stops as soon as a newly discovered cell is already
// known to the other wave and stitches the two halves at that cell.
func (s *Search) bidirectional(emit func() bool) Outcome {
	if s.start == s.target {
		s.path = []Cell{s.start}
		return Found
	}
	// 1) One wave rooted at each end.
	fwd, bwd := newWave(s.start), newWave(s.target)

	for !fwd.frontier.Empty() && !bwd.frontier.Empty() {
		// 2) One obstacle attempt per step, shared by both waves.
		s.inject()

		// 3) Forward then backward; the first contact ends the run.
		if meet, ok := s.advance(fwd, bwd); ok {
			s.path = Stitch(s.grid, fwd.parent, bwd.parent, meet)
			return Found
		}
		if meet, ok := s.advance(bwd, fwd); ok {
			s.path = Stitch(s.grid, fwd.parent, bwd.parent, meet)
			return Found
		}

		// 4) No contact yet: publish the step.
		if !emit() {
			return Pending
		}
	}

	return Exhausted
}

// advance expands the oldest cell of w. It returns the first newly
// discovered cell that other has already visited. The expanded cell is marked
// Visited either way, so a wave root never stays Empty.
func (s *Search) advance(w, other *wave) (Cell, bool) {
	cur := w.frontier.Dequeue()
	defer s.mark(cur, gridgraph.Visited)
	for nb := range s.grid.Neighbors(cur) {
		if w.visited.Has(nb) {
			continue
		}
		w.visited.Put(nb)
		w.parent[nb] = cur
		w.frontier.Enqueue(nb)
		s.grid.SetState(nb, gridgraph.Frontier)
		if other.visited.Has(nb) {
			return nb, true
		}
	}
	return Cell{}, false
}
