// Package layout describes stepgrid maps as data: ASCII rows for tests and
// small fixtures, or YAML documents for maps kept next to game content.
//
// ASCII:
//
//	S.#.T
//	..#..
//	.....
//
// YAML:
//
//	name: wall-gap
//	rows:
//	  - "S.#.T"
//	  - "..#.."
//	  - "....."
//	blocked:
//	  - [4, 2]
//	budget: 8
//
// rows may be omitted in favor of width, height and blocked. start and
// target may be given as [x, y] instead of S and T glyphs.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, no columns, or non-positive dimensions.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: unknown glyph or malformed [x, y] pair.
//   - ErrDuplicateMarker: S or T appears twice.
//   - ErrDimensionMismatch: width/height disagree with rows.
//   - ErrOutOfRange: a coordinate lies outside the map.
//   - ErrBadBudget: budget is negative.
package layout
