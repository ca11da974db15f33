package dictionary

import "errors"

var (
	// ErrDictionaryUnavailable indicates that the word source cannot be
	// located or read.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
)
