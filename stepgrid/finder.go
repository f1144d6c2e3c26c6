package stepgrid

import (
	"context"
	"log/slog"
)

// Finder runs step-bounded queries against a Grid it holds.
//
// Every query resets the working grid from the baseline, runs one flood and
// writes its result into a caller-supplied slice. The walker stack is kept
// between queries, so steady-state queries do not allocate beyond growth of
// the output slice.
//
// A Finder and its Grid must be used by one goroutine at a time.
type Finder struct {
	grid *Grid
	opts Options
	w    walker
}

// NewFinder returns a Finder over g. A nil g is replaced by an empty grid,
// on which every query returns zero cells.
func NewFinder(g *Grid, opts ...Option) *Finder {
	if g == nil {
		g = &Grid{}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	f := &Finder{grid: g, opts: o}
	f.w = walker{grid: g, opts: &f.opts}
	return f
}

// Grid returns the grid this Finder queries.
func (f *Finder) Grid() *Grid { return f.grid }

// clampBudget keeps stored values below the MaxHeight sentinel.
func clampBudget(maxSteps int) int {
	if maxSteps >= int(MaxHeight) {
		return int(MaxHeight) - 1
	}
	return maxSteps
}

// FindPath computes a shortest path of at most maxSteps hops from start to
// target and stores it in *out, start first and target last.
// It returns the number of cells written.
//
// *out is truncated before anything else happens; a nil out runs the query
// and only returns the count. Zero cells are returned when maxSteps ≤ 0,
// either endpoint is out of range, or target is not reachable within
// maxSteps. start and target count as passable for this query even if the
// baseline blocks them.
//
// Complexity: O(W×H) reset plus the flood, see floodDistance.
func (f *Finder) FindPath(start, target Point, maxSteps int, out *[]Point) int {
	var buf []Point
	if out != nil {
		buf = (*out)[:0]
	}
	buf = f.findPath(start, target, maxSteps, buf)
	if out != nil {
		*out = buf
	}
	f.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "find path",
		slog.Any("start", start),
		slog.Any("target", target),
		slog.Int("budget", maxSteps),
		slog.Int("count", len(buf)),
	)
	return len(buf)
}

func (f *Finder) findPath(start, target Point, maxSteps int, buf []Point) []Point {
	if maxSteps <= 0 {
		return buf
	}
	if !f.grid.InBounds(start) || !f.grid.InBounds(target) {
		return buf
	}

	f.grid.Reset()
	f.grid.forcePassable(start, true)
	f.grid.forcePassable(target, true)

	// heights grow away from target, so the walk from start runs downhill
	f.w.floodDistance(target, clampBudget(maxSteps))
	if f.grid.at(start) >= MaxHeight {
		return buf
	}
	return f.w.extractPath(start, buf)
}

// FindAll stores in *out every cell reachable from start in at most
// maxSteps hops, start included, in discovery order. It returns the number
// of cells written.
//
// *out is truncated first; a nil out runs the query and only returns the
// count. Zero cells are returned when maxSteps ≤ 0 or start is out of
// range. start counts as passable for this query even if the baseline
// blocks it.
func (f *Finder) FindAll(start Point, maxSteps int, out *[]Point) int {
	var buf []Point
	if out != nil {
		buf = (*out)[:0]
	}
	buf = f.findAll(start, maxSteps, buf)
	if out != nil {
		*out = buf
	}
	f.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "find all",
		slog.Any("start", start),
		slog.Int("budget", maxSteps),
		slog.Int("count", len(buf)),
	)
	return len(buf)
}

func (f *Finder) findAll(start Point, maxSteps int, buf []Point) []Point {
	if maxSteps <= 0 || !f.grid.InBounds(start) {
		return buf
	}

	f.grid.Reset()
	f.grid.forcePassable(start, true)

	return f.w.floodArea(start, clampBudget(maxSteps), buf)
}

// Path is FindPath returning a freshly allocated slice.
// The result is nil when no path exists.
func (f *Finder) Path(start, target Point, maxSteps int) []Point {
	var out []Point
	f.FindPath(start, target, maxSteps, &out)
	return out
}

// Reachable is FindAll returning a freshly allocated slice.
func (f *Finder) Reachable(start Point, maxSteps int) []Point {
	var out []Point
	f.FindAll(start, maxSteps, &out)
	return out
}
