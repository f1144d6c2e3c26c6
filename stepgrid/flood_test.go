package stepgrid

import (
	"math/rand"
	"reflect"
	"testing"
)

// The ref* functions are direct recursive descents. The walker must
// reproduce them exactly: same stored heights, same output, same order.

func refDistance(g *Grid, p Point, d, budget int) {
	if d > budget || !g.workingPassable(p) {
		return
	}
	if Height(d) >= g.at(p) {
		return
	}
	g.setAt(p, Height(d))
	for _, n := range p.Neighbors() {
		refDistance(g, n, d+1, budget)
	}
}

func refArea(g *Grid, p Point, r int, out *[]Point) {
	if r < 0 || !g.workingPassable(p) {
		return
	}
	cur := g.at(p)
	if !cur.IsUnvisited() && Height(r) <= cur {
		return
	}
	if cur.IsUnvisited() {
		*out = append(*out, p)
	}
	g.setAt(p, Height(r))
	for _, n := range p.Neighbors() {
		refArea(g, n, r-1, out)
	}
}

func refExtract(g *Grid, p Point, remaining *int, out *[]Point) {
	if *remaining < 0 || !g.workingPassable(p) {
		return
	}
	if int(g.at(p)) > *remaining {
		return
	}
	*out = append(*out, p)
	*remaining--
	for _, n := range p.Neighbors() {
		refExtract(g, n, remaining, out)
	}
}

func newTestWalker(g *Grid) *walker {
	o := DefaultOptions()
	return &walker{grid: g, opts: &o}
}

// randomGrid blocks roughly a quarter of the cells of a w×h grid.
func randomGrid(r *rand.Rand, w, h int) *Grid {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Intn(4) == 0 {
				g.SetPassable(Pt(x, y), false)
			}
		}
	}
	return g
}

func randomPoint(r *rand.Rand, g *Grid) Point {
	return Pt(r.Intn(g.Width()), r.Intn(g.Height()))
}

// TestFloodDistance_OpenGridIsManhattan checks that on an open grid every
// cell within budget holds its Manhattan distance to the reference cell,
// and every cell beyond stays untouched.
func TestFloodDistance_OpenGridIsManhattan(t *testing.T) {
	g := NewGrid(6, 5)
	ref := Pt(2, 3)
	const budget = 4

	w := newTestWalker(g)
	w.floodDistance(ref, budget)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Pt(x, y)
			md := abs(x-ref.X) + abs(y-ref.Y)
			want := MaxHeight
			if md <= budget {
				want = Height(md)
			}
			if got := g.at(p); got != want {
				t.Errorf("height%v = %d; want %d", p, got, want)
			}
		}
	}
}

// TestFloodDistance_BlockedStaysBlocked ensures blocked cells are never
// overwritten and do not conduct the flood.
func TestFloodDistance_BlockedStaysBlocked(t *testing.T) {
	g := NewGrid(3, 1)
	g.SetPassable(Pt(1, 0), false)
	g.Reset()

	newTestWalker(g).floodDistance(Pt(0, 0), 10)

	if h := g.at(Pt(1, 0)); h != Blocked {
		t.Errorf("blocked cell = %d; want Blocked", h)
	}
	if h := g.at(Pt(2, 0)); h != MaxHeight {
		t.Errorf("cell behind wall = %d; want MaxHeight", h)
	}
}

// TestFloodDistance_MatchesRecursion compares stored heights with the
// recursive reference on random maps.
func TestFloodDistance_MatchesRecursion(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		g := randomGrid(r, 1+r.Intn(8), 1+r.Intn(8))
		ref := randomPoint(r, g)
		budget := r.Intn(12)

		g.Reset()
		g.forcePassable(ref, true)
		newTestWalker(g).floodDistance(ref, budget)
		got := append([]Height(nil), g.working...)

		g.Reset()
		g.forcePassable(ref, true)
		refDistance(g, ref, 0, budget)

		if !reflect.DeepEqual(got, g.working) {
			t.Fatalf("case %d: ref=%v budget=%d\n got %v\nwant %v", i, ref, budget, got, g.working)
		}
	}
}

// TestFloodArea_MatchesRecursion compares output order and stored values
// with the recursive reference on random maps.
func TestFloodArea_MatchesRecursion(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		g := randomGrid(r, 1+r.Intn(8), 1+r.Intn(8))
		start := randomPoint(r, g)
		budget := r.Intn(10)

		g.Reset()
		g.forcePassable(start, true)
		got := newTestWalker(g).floodArea(start, budget, nil)
		gotHeights := append([]Height(nil), g.working...)

		g.Reset()
		g.forcePassable(start, true)
		var want []Point
		refArea(g, start, budget, &want)

		if !reflect.DeepEqual(got, want) {
			t.Fatalf("case %d: start=%v budget=%d\n got %v\nwant %v", i, start, budget, got, want)
		}
		if !reflect.DeepEqual(gotHeights, g.working) {
			t.Fatalf("case %d: heights differ", i)
		}
	}
}

// TestFloodArea_FirstDiscoveryOrder pins the depth-first insertion order.
// On a 2×2 open grid from (0,0) with budget 3, (0,1) is first reached the
// long way round at remaining 0, then improved to 2 by the direct hop. It
// keeps its original position at the end of the output.
func TestFloodArea_FirstDiscoveryOrder(t *testing.T) {
	g := NewGrid(2, 2)
	got := newTestWalker(g).floodArea(Pt(0, 0), 3, nil)
	want := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
	heights := map[Point]Height{{0, 0}: 3, {1, 0}: 2, {1, 1}: 1, {0, 1}: 2}
	for p, h := range heights {
		if g.at(p) != h {
			t.Errorf("remaining%v = %d; want %d", p, g.at(p), h)
		}
	}

	// 3×3 from the center: corners arrive from whichever side is explored first.
	g = NewGrid(3, 3)
	got = newTestWalker(g).floodArea(Pt(1, 1), 2, nil)
	want = []Point{
		{1, 1}, {0, 1}, {0, 2}, {0, 0}, {2, 1}, {2, 2}, {2, 0}, {1, 2}, {1, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v; want %v", got, want)
	}
}

// TestExtractPath_MatchesRecursion runs the extractor on converged random
// distance fields and compares with the recursive reference.
func TestExtractPath_MatchesRecursion(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		g := randomGrid(r, 1+r.Intn(8), 1+r.Intn(8))
		start, target := randomPoint(r, g), randomPoint(r, g)
		budget := 1 + r.Intn(14)

		g.Reset()
		g.forcePassable(start, true)
		g.forcePassable(target, true)
		w := newTestWalker(g)
		w.floodDistance(target, budget)
		if g.at(start) >= MaxHeight {
			continue
		}

		got := w.extractPath(start, nil)
		var want []Point
		remaining := int(g.at(start))
		refExtract(g, start, &remaining, &want)

		if !reflect.DeepEqual(got, want) {
			t.Fatalf("case %d: %v→%v budget=%d\n got %v\nwant %v", i, start, target, budget, got, want)
		}
	}
}

// TestExtractPath_SharedCounter pins the behavior of the shared remaining
// counter on a field that is not a true distance field. The left branch
// from the start dead-ends after one append; the right branch then runs
// with the counter already lowered by that append, so the output holds
// cells of two branches.
//
//	x=0  x=1  x=2
//	 @    @    0    y=0
//	 2    3    1    y=1
//	 @    @    @    y=2
func TestExtractPath_SharedCounter(t *testing.T) {
	g := NewGrid(3, 3)
	g.setAt(Pt(1, 1), 3)
	g.setAt(Pt(0, 1), 2)
	g.setAt(Pt(2, 1), 1)
	g.setAt(Pt(2, 0), 0)

	got := newTestWalker(g).extractPath(Pt(1, 1), nil)
	want := []Point{{1, 1}, {0, 1}, {2, 1}, {2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extract = %v; want %v", got, want)
	}
}

// TestWalker_ReusesStack checks that the stack is emptied and reused
// between runs.
func TestWalker_ReusesStack(t *testing.T) {
	g := NewGrid(5, 5)
	w := newTestWalker(g)
	w.floodDistance(Pt(0, 0), 8)
	if len(w.stack) != 0 {
		t.Fatalf("stack not drained: %d frames", len(w.stack))
	}
	capBefore := cap(w.stack)
	g.Reset()
	w.floodDistance(Pt(0, 0), 8)
	if cap(w.stack) != capBefore {
		t.Errorf("stack reallocated: cap %d → %d", capBefore, cap(w.stack))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
