package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrNoStart indicates the grid carries no start tile.
	ErrNoStart = errors.New("pipegrid: grid has no start tile")
	// ErrMultipleStarts indicates more than one start tile was found.
	ErrMultipleStarts = errors.New("pipegrid: grid has more than one start tile")
)
