package search

import (
	"slices"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Reconstruct walks parent links back from target, marking every cell that
// has a parent entry as Path. The start of the walk has no entry and is left
// untouched, as is any route cell that has since become an obstacle. It
// returns the route start→target, or nil when target itself has no parent
// entry (nothing is marked in that case).
func Reconstruct(g *gridgraph.Grid, parent map[Cell]Cell, target Cell) []Cell {
	var rev []Cell
	cur := target
	for {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		markPath(g, cur)
		rev = append(rev, cur)
		cur = prev
	}
	if len(rev) == 0 {
		return nil
	}
	rev = append(rev, cur)
	slices.Reverse(rev)

	return rev
}

// Stitch joins the two half-routes of a bidirectional run that met at meet.
// forward holds parent links growing from the start, backward those growing
// from the target. Cells on both halves are marked Path except the start; the
// target is marked like Reconstruct marks it. Returns the route start→target.
func Stitch(g *gridgraph.Grid, forward, backward map[Cell]Cell, meet Cell) []Cell {
	route := Reconstruct(g, forward, meet)
	if route == nil {
		route = []Cell{meet}
	}
	for cur := meet; ; {
		next, ok := backward[cur]
		if !ok {
			break
		}
		markPath(g, next)
		route = append(route, next)
		cur = next
	}

	return route
}

func markPath(g *gridgraph.Grid, c Cell) {
	if !g.IsBlocked(c) {
		g.SetState(c, gridgraph.Path)
	}
}
