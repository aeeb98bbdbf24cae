package life

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is created or resized with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned by direct cell accessors for coordinates
	// outside the grid. Callers are expected to clamp before calling.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrUnknownPattern is returned when a pattern name is not in the library.
	ErrUnknownPattern = errors.New("unknown pattern")
)
