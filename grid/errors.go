package grid

import "errors"

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates Width or Height is not positive.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrNegativePenalty indicates BendPenalty or ViaPenalty is negative.
	ErrNegativePenalty = errors.New("grid: penalties must be non-negative")
	// ErrOutOfBounds indicates a coordinate lies outside [0,Width)x[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadLayer indicates a layer value other than 0 or 1.
	ErrBadLayer = errors.New("grid: layer must be 0 or 1")
)
