// Package stepgrid defines the core types, height encoding, and options
// for the stepgrid subpackage of github.com/katalvlaran/steppath.
package stepgrid

import (
	"fmt"
	"log/slog"
)

// MaxHeight marks a cell that no search has bounded yet.
// It doubles as the upper limit for any stored distance.
const MaxHeight Height = 1000

// Blocked marks an impassable cell.
const Blocked Height = -1

// Height is the per-cell value shared by both grids.
//
//	Blocked (-1)        impassable
//	MaxHeight (1000)    passable, untouched by the current query
//	[0, MaxHeight)      touched; meaning depends on the flood that wrote it
type Height int

// CellState is the tagged view of a Height.
type CellState int

const (
	// StateBlocked is an impassable cell.
	StateBlocked CellState = iota
	// StateUnvisited is a passable cell with no bound yet.
	StateUnvisited
	// StateDistance is a cell holding a finite search value.
	StateDistance
)

// String implements fmt.Stringer.
func (s CellState) String() string {
	switch s {
	case StateBlocked:
		return "blocked"
	case StateUnvisited:
		return "unvisited"
	case StateDistance:
		return "distance"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// State classifies h. Any negative value is blocked and any value at or
// above MaxHeight is unvisited.
func (h Height) State() CellState {
	switch {
	case h < 0:
		return StateBlocked
	case h >= MaxHeight:
		return StateUnvisited
	default:
		return StateDistance
	}
}

// IsBlocked reports whether h marks an impassable cell.
func (h Height) IsBlocked() bool { return h < 0 }

// IsUnvisited reports whether h is the untouched sentinel.
func (h Height) IsUnvisited() bool { return h >= MaxHeight }

// Distance returns the finite value stored in h, or (0, false) when h is
// blocked or unvisited.
func (h Height) Distance() (int, bool) {
	if h.State() != StateDistance {
		return 0, false
	}
	return int(h), true
}

// Point is a grid coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// LogValue implements slog.LogValuer for structured logging.
func (p Point) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("x", p.X),
		slog.Int("y", p.Y),
	)
}

// neighborOffsets is the fixed expansion order of every walk in this
// package: left, right, y+1, y-1. Output order of both queries depends on it.
var neighborOffsets = [4]Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Neighbors returns the four orthogonal neighbors of p in expansion order.
// Neighbors may lie outside any grid.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range neighborOffsets {
		out[i] = Point{X: p.X + d.X, Y: p.Y + d.Y}
	}
	return out
}
