// Package steppath moves units across grid maps under a step budget, the
// way turn-based tactics games do.
//
// What is steppath?
//
//	A small, zero-cgo library built around a height-field flood:
//		• Map store: fixed-size passability grid with a per-query scratch copy
//		• Path query: shortest 4-directional path within N steps
//		• Area query: every cell reachable within N steps
//		• Regions: connected passable areas of a map
//		• Layouts: maps described as ASCII rows or YAML documents
//
// Subpackages:
//
//	stepgrid/ — Grid, Finder, height encoding, regions and ASCII dump
//	layout/   — parse ASCII rows and YAML layouts into a stepgrid.Grid
//
// Quick ASCII example:
//
//	S . # . T
//	. . # . .
//	. . . . .
//
// With a budget of 8, the path from S detours under the wall to reach T.
//
//	go get github.com/katalvlaran/steppath
package steppath
