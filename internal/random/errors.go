package random

import "errors"

var (
	// ErrInvalidRange indicates a NextInt call with min >= max.
	ErrInvalidRange = errors.New("invalid random range")
)
