package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates an unknown preset name or a custom
	// configuration violating a basic numeric invariant (negative count,
	// minimum word length above the maximum, unknown case policy).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownPreset indicates a preset name with no entry in the preset
	// table. It matches ErrInvalidConfiguration under errors.Is.
	ErrUnknownPreset = fmt.Errorf("%w: unknown preset", ErrInvalidConfiguration)

	// ErrInsufficientDictionary indicates that length filtering left fewer
	// candidate words than the configuration requires.
	ErrInsufficientDictionary = errors.New("insufficient dictionary")
)
