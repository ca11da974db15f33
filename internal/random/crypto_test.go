package random

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NextInt
// ─────────────────────────────────────────────

func TestCryptoSource_NextInt_StaysInRange(t *testing.T) {
	src := NewCryptoSource()

	for i := 0; i < 1000; i++ {
		n, err := src.NextInt(3, 17)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 3)
		assert.Less(t, n, 17)
	}
}

func TestCryptoSource_NextInt_SingleValueRange(t *testing.T) {
	src := NewCryptoSource()

	n, err := src.NextInt(5, 6)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCryptoSource_NextInt_NegativeBounds(t *testing.T) {
	src := NewCryptoSource()

	for i := 0; i < 100; i++ {
		n, err := src.NextInt(-10, -5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, -10)
		assert.Less(t, n, -5)
	}
}

func TestCryptoSource_NextInt_EmptyRange_ReturnsError(t *testing.T) {
	src := NewCryptoSource()

	_, err := src.NextInt(7, 7)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestCryptoSource_NextInt_InvertedRange_ReturnsError(t *testing.T) {
	src := NewCryptoSource()

	_, err := src.NextInt(10, 2)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestCryptoSource_NextInt_CoversWholeRange(t *testing.T) {
	src := NewCryptoSource()

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n, err := src.NextInt(0, 4)
		require.NoError(t, err)
		seen[n] = true
	}

	// 500 draws over 4 values: missing one is astronomically unlikely
	assert.Len(t, seen, 4)
}
