package stepgrid

// Regions finds all 4-connected regions of baseline-passable cells.
// Returns one slice of points per region, each in breadth-first order from
// the region's first cell in row-major order; regions are ordered by that
// first cell.
//
// Two cells in different regions can never be joined by FindPath, except
// through a start or target cell that a query forces passable.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Point {
	seen := make([]bool, len(g.baseline))
	var regions [][]Point

	for i0, h := range g.baseline {
		if h.IsBlocked() || seen[i0] {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		var region []Point

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, v := range u.Neighbors() {
				if !g.IsPassable(v) {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b are both baseline-passable and lie in
// the same region.
// Complexity: O(W·H) worst case.
func (g *Grid) Connected(a, b Point) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.baseline))
	queue := []Point{a}
	seen[g.index(a)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range queue[qi].Neighbors() {
			if !g.IsPassable(v) || seen[g.index(v)] {
				continue
			}
			if v == b {
				return true
			}
			seen[g.index(v)] = true
			queue = append(queue, v)
		}
	}
	return false
}
