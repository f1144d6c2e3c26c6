// File: stepgrid/example_test.go
package stepgrid_test

import (
	"fmt"

	"github.com/katalvlaran/steppath/stepgrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFinder_FindPath moves a unit around a wall.
// Scenario:
//
//	S . # . T
//	. . # . .
//	. . . . .
//
//   - (2,0) and (2,1) are blocked.
//   - Budget 8 is exactly the detour length, so the query succeeds.
//
// Complexity: O(W·H) reset plus the flood.
func ExampleFinder_FindPath() {
	g := stepgrid.NewGrid(5, 3)
	g.SetPassable(stepgrid.Pt(2, 0), false)
	g.SetPassable(stepgrid.Pt(2, 1), false)
	f := stepgrid.NewFinder(g)

	var path []stepgrid.Point
	n := f.FindPath(stepgrid.Pt(0, 0), stepgrid.Pt(4, 0), 8, &path)
	fmt.Println("cells:", n)
	fmt.Println(path)

	fmt.Println("budget 7:", f.FindPath(stepgrid.Pt(0, 0), stepgrid.Pt(4, 0), 7, &path))

	// Output:
	// cells: 9
	// [(0,0) (1,0) (1,1) (1,2) (2,2) (3,2) (4,2) (4,1) (4,0)]
	// budget 7: 0
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindAll
////////////////////////////////////////////////////////////////////////////////

// ExampleFinder_FindAll lists the cells a unit at the center of a 3×3 map
// can reach with one step, in discovery order.
func ExampleFinder_FindAll() {
	f := stepgrid.NewFinder(stepgrid.NewGrid(3, 3))

	var area []stepgrid.Point
	f.FindAll(stepgrid.Pt(1, 1), 1, &area)
	fmt.Println(area)

	// Output:
	// [(1,1) (0,1) (2,1) (1,2) (1,0)]
}
