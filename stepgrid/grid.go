package stepgrid

// Grid is the map store: fixed dimensions plus two row-major height
// buffers of equal size.
//
// baseline holds the caller-configured passability (Blocked or MaxHeight)
// and is only written by Configure and SetPassable. working is scratch space
// for one query; Reset copies baseline over it.
//
// The zero Grid is a valid 0×0 grid: every coordinate is out of range.
// A Grid is not safe for concurrent use.
type Grid struct {
	width, height int
	baseline      []Height
	working       []Height
}

// NewGrid allocates a width×height grid with every cell passable.
// Non-positive or oversized dimensions yield a zero-sized grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Configure(width, height)
	return g
}

// MaxCells bounds width×height for a single grid.
const MaxCells = 1 << 22

// Configure (re)allocates both buffers to width×height and marks every
// cell passable. It is a no-op if either dimension is ≤ 0 or the cell
// count would exceed MaxCells.
// Complexity: O(W×H).
func (g *Grid) Configure(width, height int) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return
	}
	g.Teardown()

	g.width, g.height = width, height
	n := width * height
	g.baseline = make([]Height, n)
	g.working = make([]Height, n)
	for i := range g.baseline {
		g.baseline[i] = MaxHeight
		g.working[i] = MaxHeight
	}
}

// Teardown releases both buffers and resets dimensions to zero.
// Safe to call repeatedly.
func (g *Grid) Teardown() {
	g.baseline = nil
	g.working = nil
	g.width, g.height = 0, 0
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index maps p to a row-major index: y*width + x.
// Callers must check InBounds first.
func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
// A 0×0 grid maps every index to the zero Point.
func (g *Grid) Coordinate(idx int) Point {
	if g.width == 0 {
		return Point{}
	}
	return Point{X: idx % g.width, Y: idx / g.width}
}

// SetPassable writes passability for p into the baseline grid.
// Out-of-range coordinates are ignored.
func (g *Grid) SetPassable(p Point, passable bool) {
	if !g.InBounds(p) {
		return
	}
	if passable {
		g.baseline[g.index(p)] = MaxHeight
	} else {
		g.baseline[g.index(p)] = Blocked
	}
}

// IsPassable reports whether p is passable in the baseline grid.
// Out-of-range coordinates report false.
func (g *Grid) IsPassable(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return !g.baseline[g.index(p)].IsBlocked()
}

// Baseline returns the configured height at p, or Blocked when out of range.
func (g *Grid) Baseline(p Point) Height {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.baseline[g.index(p)]
}

// Working returns the height left at p by the most recent query,
// or Blocked when out of range.
func (g *Grid) Working(p Point) Height {
	return g.at(p)
}

// Reset copies the baseline grid over the working grid.
// Complexity: O(W×H).
func (g *Grid) Reset() {
	copy(g.working, g.baseline)
}

// at reads the working grid; out of range reads as Blocked.
func (g *Grid) at(p Point) Height {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.working[g.index(p)]
}

// setAt writes the working grid; out of range is ignored.
func (g *Grid) setAt(p Point, h Height) {
	if !g.InBounds(p) {
		return
	}
	g.working[g.index(p)] = h
}

// forcePassable overrides passability of p in the working grid only.
func (g *Grid) forcePassable(p Point, passable bool) {
	if passable {
		g.setAt(p, MaxHeight)
	} else {
		g.setAt(p, Blocked)
	}
}

// workingPassable reports whether p is passable in the working grid.
func (g *Grid) workingPassable(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return !g.working[g.index(p)].IsBlocked()
}
