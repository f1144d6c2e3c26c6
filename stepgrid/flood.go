package stepgrid

// frame is one pending visit on a walker stack: the cell and the value
// carried into it (a distance for floodDistance, a remaining budget for
// floodArea, unused for the extractor).
type frame struct {
	p Point
	v int
}

// walker replays a recursive four-way descent on an explicit LIFO stack.
// All work happens on entry to a cell and children are pushed in reverse
// expansion order, so pops occur in exactly the order the recursive calls
// would run.
type walker struct {
	grid  *Grid
	opts  *Options
	stack []frame
}

// push schedules the four neighbors of p with value v so that the first
// neighbor in expansion order is popped first.
func (w *walker) push(p Point, v int) {
	for i := len(neighborOffsets) - 1; i >= 0; i-- {
		d := neighborOffsets[i]
		w.stack = append(w.stack, frame{p: Point{X: p.X + d.X, Y: p.Y + d.Y}, v: v})
	}
}

// pop removes and returns the top frame.
func (w *walker) pop() frame {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return f
}

// store writes h at p and fires the relax hook.
func (w *walker) store(p Point, h Height) {
	w.grid.setAt(p, h)
	w.opts.OnRelax(p, h)
}

// floodDistance assigns every cell within budget hops of ref its minimum
// hop count from ref.
//
// Visiting (p, d):
//   - d > budget, out of range or blocked: stop.
//   - d ≥ stored value: stop, an equal or better route already reached p.
//   - otherwise store d and visit all four neighbors with d+1.
//
// The fixpoint is independent of visit order: a cell is only overwritten by
// a strictly smaller distance and every overwrite re-expands it.
// Complexity: O(W×H×budget) visits worst case, O(budget) stack depth.
func (w *walker) floodDistance(ref Point, budget int) {
	w.stack = append(w.stack[:0], frame{p: ref, v: 0})
	for len(w.stack) > 0 {
		f := w.pop()
		if f.v > budget || !w.grid.workingPassable(f.p) {
			continue
		}
		if Height(f.v) >= w.grid.at(f.p) {
			continue
		}
		w.store(f.p, Height(f.v))
		w.push(f.p, f.v+1)
	}
}

// floodArea marks every cell reachable from start within budget hops and
// appends each one to out the first time it leaves the untouched state.
//
// Stored values are remaining budget, so a larger value means closer to
// start. Visiting (p, r):
//   - r < 0, out of range or blocked: stop.
//   - p already touched and r ≤ stored value: stop.
//   - if p was untouched, append it.
//   - store r and visit all four neighbors with r-1.
//
// Each cell is appended exactly once, at first discovery; later overwrites
// with a shorter route do not move it.
func (w *walker) floodArea(start Point, budget int, out []Point) []Point {
	w.stack = append(w.stack[:0], frame{p: start, v: budget})
	for len(w.stack) > 0 {
		f := w.pop()
		if f.v < 0 || !w.grid.workingPassable(f.p) {
			continue
		}
		cur := w.grid.at(f.p)
		if !cur.IsUnvisited() && Height(f.v) <= cur {
			continue
		}
		if cur.IsUnvisited() {
			out = append(out, f.p)
			w.opts.OnAppend(f.p)
		}
		w.store(f.p, Height(f.v))
		w.push(f.p, f.v-1)
	}
	return out
}
