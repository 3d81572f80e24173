package gridgraph

// ConnectedComponents finds all contiguous regions of non-obstacle cells
// under 8-way adjacency. Components are listed in row-major order of their
// first cell; cells inside a component appear in BFS discovery order.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell

	for i0, s := range g.cells {
		if s == Obstacle || seen[i0] {
			continue
		}
		queue := []Cell{g.Coordinate(i0)}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for nb := range g.Neighbors(queue[qi]) {
				vi := g.Index(nb)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Reachable reports whether a route of non-obstacle cells joins from and to.
// Either end being an obstacle or out of bounds yields false, except that a
// cell is always reachable from itself when in bounds.
func (g *Grid) Reachable(from, to Cell) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}
	if from == to {
		return true
	}
	if g.IsBlocked(from) || g.IsBlocked(to) {
		return false
	}

	seen := make([]bool, g.Size())
	seen[g.Index(from)] = true
	queue := []Cell{from}
	for qi := 0; qi < len(queue); qi++ {
		for nb := range g.Neighbors(queue[qi]) {
			if nb == to {
				return true
			}
			vi := g.Index(nb)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, nb)
			}
		}
	}

	return false
}
