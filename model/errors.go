package model

import "github.com/pkg/errors"

var (
	// ErrViewportTooSmall is returned when a pattern is fitted into a viewport
	// narrower or shorter than two cells.
	ErrViewportTooSmall = errors.New("viewport too small")
	// ErrInvalidDimensions is returned for grids with a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrSeedOutOfBounds is returned when a seed point does not fit the grid.
	ErrSeedOutOfBounds = errors.New("seed point out of bounds")
)
