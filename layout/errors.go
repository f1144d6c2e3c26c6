package layout

import "errors"

// Sentinel errors for layout parsing and validation.
var (
	// ErrEmptyGrid indicates a layout with no rows, no columns, or
	// non-positive dimensions.
	ErrEmptyGrid = errors.New("layout: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("layout: all rows must have the same length")
	// ErrBadCell indicates an unknown cell glyph or a malformed coordinate.
	ErrBadCell = errors.New("layout: invalid cell")
	// ErrDuplicateMarker indicates more than one S or T glyph.
	ErrDuplicateMarker = errors.New("layout: start or target marked more than once")
	// ErrDimensionMismatch indicates explicit width/height disagreeing with rows.
	ErrDimensionMismatch = errors.New("layout: width/height do not match rows")
	// ErrOutOfRange indicates a coordinate outside the layout.
	ErrOutOfRange = errors.New("layout: coordinate out of range")
	// ErrTooLarge indicates dimensions beyond stepgrid.MaxCells cells.
	ErrTooLarge = errors.New("layout: grid has too many cells")
	// ErrBadBudget indicates a negative step budget.
	ErrBadBudget = errors.New("layout: budget must not be negative")
)
