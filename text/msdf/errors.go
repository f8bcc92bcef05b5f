package msdf

import "errors"

// Sentinel errors for msdf package.
var (
	// ErrBitmapTooLarge is returned when the requested bitmap exceeds
	// Config.MaxDimension on either axis.
	ErrBitmapTooLarge = errors.New("msdf: bitmap exceeds maximum dimension")

	// ErrInvalidProjection is returned when a projection has a zero or
	// non-finite scale.
	ErrInvalidProjection = errors.New("msdf: projection scale must be positive and finite")

	// ErrInvalidDimension is returned for a negative width or height.
	ErrInvalidDimension = errors.New("msdf: bitmap dimensions must not be negative")
)
