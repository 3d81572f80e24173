package gridgraph_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

//----------------------------------------------------------------------------//
// New, Parse and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"Negative", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.rows, tc.cols)
			if !errors.Is(err, gridgraph.ErrBadDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestParse_Errors verifies that Parse rejects empty or ragged layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"NoRows", nil},
		{"EmptyRow", []string{""}},
		{"Ragged", []string{"...", ".."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gridgraph.Parse(tc.rows...); !errors.Is(err, gridgraph.ErrBadDimensions) {
				t.Errorf("Parse(%q) error = %v; want ErrBadDimensions", tc.rows, err)
			}
		})
	}
}

// TestParse_Obstacles checks that '#' becomes Obstacle and the rest Empty.
func TestParse_Obstacles(t *testing.T) {
	g, err := gridgraph.Parse(
		".#.",
		"..#",
	)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dims = %d×%d; want 2×3", g.Rows(), g.Cols())
	}
	if !g.IsBlocked(gridgraph.Cell{Row: 0, Col: 1}) || !g.IsBlocked(gridgraph.Cell{Row: 1, Col: 2}) {
		t.Errorf("obstacles missing:\n%s", g)
	}
	if got := g.Count(gridgraph.Obstacle); got != 2 {
		t.Errorf("Count(Obstacle) = %d; want 2", got)
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New(2, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

// TestIndexCoordinate round-trips every cell of a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, _ := gridgraph.New(3, 4)
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if g.Index(c) != i {
			t.Errorf("Index(Coordinate(%d)) = %d", i, g.Index(c))
		}
	}
}

//----------------------------------------------------------------------------//
// State mutation Tests
//----------------------------------------------------------------------------//

// TestSetState_OutOfBoundsPanics verifies that SetState treats a bad
// coordinate as a programming error.
func TestSetState_OutOfBoundsPanics(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, gridgraph.ErrOutOfBounds) {
			t.Errorf("recover() = %v; want ErrOutOfBounds panic", r)
		}
	}()
	g.SetState(gridgraph.Cell{Row: 2, Col: 0}, gridgraph.Visited)
}

// TestReset_Idempotent checks that resetting twice equals a fresh grid.
func TestReset_Idempotent(t *testing.T) {
	fresh, _ := gridgraph.New(4, 5)
	g, _ := gridgraph.New(4, 5)
	g.SetState(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Obstacle)
	g.SetState(gridgraph.Cell{Row: 1, Col: 2}, gridgraph.Frontier)
	g.SetState(gridgraph.Cell{Row: 3, Col: 4}, gridgraph.Path)

	g.Reset()
	g.Reset()

	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Errorf("after double Reset:\n%s\nwant:\n%s", g, fresh)
	}
	if got := g.Count(gridgraph.Empty); got != 20 {
		t.Errorf("Count(Empty) = %d; want 20", got)
	}
}

// TestSnapshot_IsCopy ensures mutating a snapshot leaves the grid intact.
func TestSnapshot_IsCopy(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	snap := g.Snapshot()
	snap[0][0] = gridgraph.Obstacle
	if g.IsBlocked(gridgraph.Cell{}) {
		t.Error("Snapshot shares storage with the grid")
	}
}

// TestView_ObservesLiveGrid ensures a View reflects later mutations.
func TestView_ObservesLiveGrid(t *testing.T) {
	g, _ := gridgraph.New(2, 3)
	v := g.View()
	c := gridgraph.Cell{Row: 1, Col: 1}
	g.SetState(c, gridgraph.Visited)
	if v.State(c) != gridgraph.Visited {
		t.Errorf("View.State(%v) = %v; want Visited", c, v.State(c))
	}
	if v.Rows() != 2 || v.Cols() != 3 {
		t.Errorf("View dims = %d×%d; want 2×3", v.Rows(), v.Cols())
	}
	if want := "...\n.o.\n"; v.String() != want {
		t.Errorf("View.String() = %q; want %q", v.String(), want)
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the clockwise Moves order from an interior cell.
func TestNeighbors_Order(t *testing.T) {
	g, _ := gridgraph.New(3, 3)
	got := slices.Collect(g.Neighbors(gridgraph.Cell{Row: 1, Col: 1}))
	want := []gridgraph.Cell{
		{0, 1}, // Up
		{0, 2}, // Up-Right
		{1, 2}, // Right
		{2, 2}, // Down-Right
		{2, 1}, // Down
		{2, 0}, // Down-Left
		{1, 0}, // Left
		{0, 0}, // Up-Left
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors = %v; want %v", got, want)
	}
}

// TestNeighbors_CornerAndObstacles checks bounds clipping and obstacle exclusion.
func TestNeighbors_CornerAndObstacles(t *testing.T) {
	g, _ := gridgraph.Parse(
		"...",
		"#..",
		"...",
	)
	got := slices.Collect(g.Neighbors(gridgraph.Cell{Row: 2, Col: 0}))
	want := []gridgraph.Cell{{1, 1}, {2, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors = %v; want %v", got, want)
	}
}

// TestNeighbors_Lazy shows that an obstacle placed mid-iteration is honored.
func TestNeighbors_Lazy(t *testing.T) {
	g, _ := gridgraph.New(3, 3)
	var got []gridgraph.Cell
	for nb := range g.Neighbors(gridgraph.Cell{Row: 1, Col: 1}) {
		if len(got) == 0 {
			g.SetState(gridgraph.Cell{Row: 1, Col: 2}, gridgraph.Obstacle)
		}
		got = append(got, nb)
	}
	if slices.Contains(got, gridgraph.Cell{Row: 1, Col: 2}) {
		t.Errorf("Neighbors yielded a cell blocked during iteration: %v", got)
	}
	if len(got) != 7 {
		t.Errorf("len(Neighbors) = %d; want 7", len(got))
	}
}

// TestIsMove covers adjacency under the eight moves.
func TestIsMove(t *testing.T) {
	a := gridgraph.Cell{Row: 2, Col: 2}
	for _, m := range gridgraph.Moves {
		if !gridgraph.IsMove(a, a.Add(m)) {
			t.Errorf("IsMove(%v,%v)=false", a, a.Add(m))
		}
	}
	for _, b := range []gridgraph.Cell{{2, 2}, {0, 2}, {4, 3}} {
		if gridgraph.IsMove(a, b) {
			t.Errorf("IsMove(%v,%v)=true; want false", a, b)
		}
	}
}

// TestCellState_String covers names and glyphs.
func TestCellState_String(t *testing.T) {
	cases := []struct {
		s    gridgraph.CellState
		name string
		r    rune
	}{
		{gridgraph.Empty, "Empty", '.'},
		{gridgraph.Obstacle, "Obstacle", '#'},
		{gridgraph.Frontier, "Frontier", '+'},
		{gridgraph.Visited, "Visited", 'o'},
		{gridgraph.Path, "Path", '*'},
	}
	for _, tc := range cases {
		if tc.s.String() != tc.name || tc.s.Rune() != tc.r {
			t.Errorf("%d: got (%s,%q); want (%s,%q)", tc.s, tc.s.String(), tc.s.Rune(), tc.name, tc.r)
		}
	}
}
