package stepgrid

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes an ASCII rendering of both grids to w for manual inspection.
// The layout is not stable and must not be parsed.
//
//	baseline:  X blocked, @ passable
//	heights:   X blocked, two-digit stored value, @ untouched
//	touched:   X blocked, * touched by the last query, @ untouched
func (g *Grid) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "grid %dx%d\n", g.width, g.height)
	bw.WriteString("   ")
	for x := 0; x < g.width; x++ {
		fmt.Fprintf(bw, "%02d", x)
	}
	bw.WriteByte('\n')

	g.dumpTable(bw, "baseline:", g.baseline, func(h Height) string {
		if h.IsBlocked() {
			return "X "
		}
		return "@ "
	})
	g.dumpTable(bw, "heights:", g.working, func(h Height) string {
		switch h.State() {
		case StateBlocked:
			return "X "
		case StateDistance:
			return fmt.Sprintf("%02d", int(h)%100)
		default:
			return "@ "
		}
	})
	g.dumpTable(bw, "touched:", g.working, func(h Height) string {
		switch h.State() {
		case StateBlocked:
			return "X "
		case StateDistance:
			return "* "
		default:
			return "@ "
		}
	})

	return bw.Flush()
}

func (g *Grid) dumpTable(bw *bufio.Writer, title string, cells []Height, glyph func(Height) string) {
	bw.WriteString(title)
	bw.WriteByte('\n')
	for y := 0; y < g.height; y++ {
		fmt.Fprintf(bw, "%02d ", y)
		for x := 0; x < g.width; x++ {
			bw.WriteString(glyph(cells[y*g.width+x]))
		}
		bw.WriteByte('\n')
	}
}
