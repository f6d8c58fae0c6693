package gridgraph

import "errors"

var (
	// ErrEmptyMap indicates the text picture has no rows or no columns.
	ErrEmptyMap = errors.New("gridgraph: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownTile indicates a character outside the tile legend.
	ErrUnknownTile = errors.New("gridgraph: unknown tile character")
)
