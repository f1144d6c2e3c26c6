package layout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/steppath/stepgrid"
)

// Cell glyphs understood by Parse and produced by Overlay.
const (
	GlyphOpen    = '.'
	GlyphBlocked = '#'
	GlyphStart   = 'S'
	GlyphTarget  = 'T'
	GlyphMark    = '*'
)

// Layout is a validated map description: dimensions, blocked cells and an
// optional query (start, target, budget) that goes with the map.
type Layout struct {
	Name          string
	Width, Height int
	Blocked       []stepgrid.Point
	Start, Target *stepgrid.Point
	Budget        int
}

// document is the YAML shape of a Layout.
type document struct {
	Name    string   `yaml:"name"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Rows    []string `yaml:"rows"`
	Blocked [][]int  `yaml:"blocked"`
	Start   []int    `yaml:"start"`
	Target  []int    `yaml:"target"`
	Budget  int      `yaml:"budget"`
}

// Parse builds a Layout from ASCII rows, one string per grid row.
//
//	'#', 'X', 'x'   blocked
//	'.', '@', ' '   passable
//	'S'             passable, start
//	'T'             passable, target
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCell or ErrDuplicateMarker.
// Complexity: O(W×H).
func Parse(rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	l := &Layout{Width: w, Height: len(rows)}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x := 0; x < w; x++ {
			p := stepgrid.Pt(x, y)
			switch row[x] {
			case '#', 'X', 'x':
				l.Blocked = append(l.Blocked, p)
			case '.', '@', ' ':
			case GlyphStart:
				if l.Start != nil {
					return nil, fmt.Errorf("%w: second %q at %v", ErrDuplicateMarker, GlyphStart, p)
				}
				l.Start = &p
			case GlyphTarget:
				if l.Target != nil {
					return nil, fmt.Errorf("%w: second %q at %v", ErrDuplicateMarker, GlyphTarget, p)
				}
				l.Target = &p
			default:
				return nil, fmt.Errorf("%w: glyph %q at %v", ErrBadCell, row[x], p)
			}
		}
	}
	return l, nil
}

// MustParse is Parse that panics on error. Intended for fixtures.
func MustParse(rows ...string) *Layout {
	l, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return l
}

// Load decodes one YAML layout document from r and validates it.
// Unknown fields are rejected.
func Load(r io.Reader) (*Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	return doc.build()
}

// LoadFile reads a YAML layout from path.
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: open %s: %w", path, err)
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// build validates doc and converts it to a Layout.
// Rows, when present, define dimensions and markers; explicit width and
// height must then agree with them. blocked, start and target are applied
// on top of rows.
func (doc *document) build() (*Layout, error) {
	var l *Layout
	if len(doc.Rows) > 0 {
		var err error
		if l, err = Parse(doc.Rows); err != nil {
			return nil, err
		}
		if (doc.Width != 0 && doc.Width != l.Width) || (doc.Height != 0 && doc.Height != l.Height) {
			return nil, fmt.Errorf("%w: declared %dx%d, rows are %dx%d",
				ErrDimensionMismatch, doc.Width, doc.Height, l.Width, l.Height)
		}
	} else {
		if doc.Width <= 0 || doc.Height <= 0 {
			return nil, ErrEmptyGrid
		}
		l = &Layout{Width: doc.Width, Height: doc.Height}
	}
	if l.Width > stepgrid.MaxCells/l.Height {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, l.Width, l.Height)
	}
	l.Name = doc.Name

	for _, c := range doc.Blocked {
		p, err := l.point(c)
		if err != nil {
			return nil, fmt.Errorf("blocked: %w", err)
		}
		l.Blocked = append(l.Blocked, p)
	}
	if doc.Start != nil {
		p, err := l.point(doc.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		l.Start = &p
	}
	if doc.Target != nil {
		p, err := l.point(doc.Target)
		if err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}
		l.Target = &p
	}
	if doc.Budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, doc.Budget)
	}
	l.Budget = doc.Budget

	return l, nil
}

// point converts an [x, y] pair and checks it against l's bounds.
func (l *Layout) point(c []int) (stepgrid.Point, error) {
	if len(c) != 2 {
		return stepgrid.Point{}, fmt.Errorf("%w: want [x, y], got %v", ErrBadCell, c)
	}
	p := stepgrid.Pt(c[0], c[1])
	if p.X < 0 || p.X >= l.Width || p.Y < 0 || p.Y >= l.Height {
		return stepgrid.Point{}, fmt.Errorf("%w: %v in %dx%d", ErrOutOfRange, p, l.Width, l.Height)
	}
	return p, nil
}

// Apply configures g to l's dimensions and blocks l's blocked cells.
// Any previous content of g is discarded.
func (l *Layout) Apply(g *stepgrid.Grid) {
	g.Configure(l.Width, l.Height)
	for _, p := range l.Blocked {
		g.SetPassable(p, false)
	}
}

// Grid returns a new grid configured from l.
func (l *Layout) Grid() *stepgrid.Grid {
	g := &stepgrid.Grid{}
	l.Apply(g)
	return g
}

// Overlay renders g's baseline as ASCII rows, with each cell of marks
// drawn as '*'. Out-of-range marks are ignored.
func Overlay(g *stepgrid.Grid, marks []stepgrid.Point) []string {
	buf := make([][]byte, g.Height())
	for y := range buf {
		buf[y] = make([]byte, g.Width())
		for x := range buf[y] {
			if g.IsPassable(stepgrid.Pt(x, y)) {
				buf[y][x] = GlyphOpen
			} else {
				buf[y][x] = GlyphBlocked
			}
		}
	}
	for _, p := range marks {
		if g.InBounds(p) {
			buf[p.Y][p.X] = GlyphMark
		}
	}
	rows := make([]string, len(buf))
	for y, b := range buf {
		rows[y] = string(b)
	}
	return rows
}

// String renders l as ASCII rows separated by newlines, with S and T
// markers when set.
func (l *Layout) String() string {
	g := l.Grid()
	rows := Overlay(g, nil)
	put := func(p *stepgrid.Point, glyph byte) {
		if p == nil {
			return
		}
		b := []byte(rows[p.Y])
		b[p.X] = glyph
		rows[p.Y] = string(b)
	}
	put(l.Start, GlyphStart)
	put(l.Target, GlyphTarget)
	return strings.Join(rows, "\n")
}
