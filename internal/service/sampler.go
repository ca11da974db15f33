package service

import (
	"fmt"

	"github.com/MKhiriev/go-xkpasswd/internal/random"
)

// sampleWords draws n entries from filtered independently, uniformly, and
// with replacement. Draw order is preserved: it determines word position in
// the final password, which the positional case policies depend on.
func sampleWords(filtered []string, n int, rnd random.Source) ([]string, error) {
	if len(filtered) < n {
		return nil, fmt.Errorf("%w: %d candidate words after filtering, need %d",
			ErrInsufficientDictionary, len(filtered), n)
	}

	sampled := make([]string, n)
	for i := range sampled {
		idx, err := rnd.NextInt(0, len(filtered))
		if err != nil {
			return nil, fmt.Errorf("sampling word %d: %w", i, err)
		}
		sampled[i] = filtered[idx]
	}

	return sampled, nil
}
