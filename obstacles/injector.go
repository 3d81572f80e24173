// Package obstacles grows permanent obstacles on a grid while a search runs.
//
// An Injector is consulted once per search step. With probability p it picks
// a uniformly random cell and, unless that cell is excluded (the start and
// target of the run), turns it into an Obstacle. Obstacles never revert within
// a run, and cells already sitting in a search frontier are not protected:
// the search has to cope with a queued cell turning into a wall.
//
// Randomness comes from golang.org/x/exp/rand so that a run can be replayed
// from a single uint64 seed. A probability of 0 never draws coordinates, which
// keeps obstacle-free runs fully deterministic.
package obstacles

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// DefaultProbability is the per-step spawn chance of the reference configuration.
const DefaultProbability = 0.02

var (
	// ErrBadProbability indicates a spawn probability outside [0,1].
	ErrBadProbability = errors.New("obstacles: probability must lie in [0,1]")
	// ErrNilRand indicates a nil random source.
	ErrNilRand = errors.New("obstacles: random source is nil")
)

// Injector spawns obstacles at random.
type Injector struct {
	probability float64
	rng         *rand.Rand
	exclude     mapset.Set[gridgraph.Cell]
	spawned     int
}

// New returns an Injector spawning with the given probability, never on any
// of the excluded cells.
func New(probability float64, rng *rand.Rand, exclude ...gridgraph.Cell) (*Injector, error) {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadProbability, probability)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	ex := mapset.New[gridgraph.Cell]()
	for _, c := range exclude {
		ex.Put(c)
	}

	return &Injector{probability: probability, rng: rng, exclude: ex}, nil
}

// NewSeeded is New with a fresh generator seeded by seed.
func NewSeeded(probability float64, seed uint64, exclude ...gridgraph.Cell) (*Injector, error) {
	return New(probability, rand.New(rand.NewSource(seed)), exclude...)
}

// Probability returns the per-call spawn chance.
func (in *Injector) Probability() float64 { return in.probability }

// Spawned returns how many cells this Injector has turned into obstacles.
func (in *Injector) Spawned() int { return in.spawned }

// MaybeSpawn performs one spawn attempt on g. It returns the drawn cell and
// whether that cell was newly converted to an Obstacle. The row is drawn
// before the column, and nothing is drawn unless the probability check passes.
func (in *Injector) MaybeSpawn(g *gridgraph.Grid) (gridgraph.Cell, bool) {
	if in.probability == 0 || in.rng.Float64() >= in.probability {
		return gridgraph.Cell{}, false
	}
	c := gridgraph.Cell{
		Row: in.rng.Intn(g.Rows()),
		Col: in.rng.Intn(g.Cols()),
	}
	if in.exclude.Has(c) || g.IsBlocked(c) {
		return c, false
	}
	g.SetState(c, gridgraph.Obstacle)
	in.spawned++

	return c, true
}
