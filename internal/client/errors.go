package client

import "errors"

var (
	// ErrNoPasswordsReturned indicates that the generation backend answered
	// successfully but with an empty password list.
	ErrNoPasswordsReturned = errors.New("no passwords returned")
)
