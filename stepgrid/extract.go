package stepgrid

// extractPath walks a populated distance field downhill from start and
// appends every cell it accepts to out.
//
// A single remaining counter, seeded with start's height, is shared by the
// whole walk. Visiting p:
//   - counter < 0, out of range or blocked: stop.
//   - height(p) > counter: stop, p is not downhill.
//   - otherwise append p, decrement the counter and visit all four
//     neighbors in expansion order.
//
// The counter is not restored between sibling branches, so what a later
// sibling accepts depends on how much earlier siblings already appended.
// On a converged distance field the first branch always descends straight
// to the reference cell and drives the counter below zero, so the output is
// one shortest path of height(start)+1 cells. Fields that are not a true
// distance field (see TestExtractPath_SharedCounter) can yield more cells.
func (w *walker) extractPath(start Point, out []Point) []Point {
	remaining := int(w.grid.at(start))
	w.stack = append(w.stack[:0], frame{p: start})
	for len(w.stack) > 0 {
		f := w.pop()
		if remaining < 0 {
			// every pending visit would stop here as well
			w.stack = w.stack[:0]
			break
		}
		if !w.grid.workingPassable(f.p) {
			continue
		}
		if int(w.grid.at(f.p)) > remaining {
			continue
		}
		out = append(out, f.p)
		w.opts.OnAppend(f.p)
		remaining--
		w.push(f.p, 0)
	}
	return out
}
