// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package random provides the cryptographically secure random source used by
// the password engine. All randomness in generated passwords (word picks,
// case bits, digit groups, separator and padding symbol choices) flows
// through the [Source] interface so that tests can substitute a
// deterministic implementation.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// cryptoSource is the production [Source] backed by the OS CSPRNG.
type cryptoSource struct{}

// NewCryptoSource returns a [Source] that reads from crypto/rand. The value
// is stateless and safe for concurrent use.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// NextInt implements [Source] using rand.Int, which already yields a
// uniform value in [0, n) without modulo bias.
func (cryptoSource) NextInt(min, max int) (int, error) {
	if min >= max {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		return 0, fmt.Errorf("reading from CSPRNG: %w", err)
	}

	return min + int(n.Int64()), nil
}
