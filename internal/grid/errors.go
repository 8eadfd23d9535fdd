package grid

import "errors"

var (
	ErrInvalidSize      = errors.New("grid: sizes must be positive")
	ErrViewportTooLarge = errors.New("grid: viewport larger than grid")
	ErrItemCount        = errors.New("grid: item count does not match rows*cols")
	ErrUnknownStrategy  = errors.New("grid: unknown scroll strategy")
	ErrUnknownDirection = errors.New("grid: unknown direction")
	ErrAttached         = errors.New("grid: manager already attached")
)
