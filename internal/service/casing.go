package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-xkpasswd/internal/random"
	"github.com/MKhiriev/go-xkpasswd/models"
)

// applyCase returns a new word sequence with the given case policy applied.
// Words are never merged or reordered. Only [models.CaseRandom] consumes
// randomness: exactly one draw per word. Every other policy leaves the
// source untouched, which keeps seeded-source tests reproducible.
func applyCase(words []string, policy models.CasePolicy, rnd random.Source) ([]string, error) {
	out := make([]string, len(words))

	switch policy {
	case models.CaseNone, "":
		copy(out, words)

	case models.CaseFirstUpper:
		for i, word := range words {
			out[i] = upperFirst(word)
		}

	case models.CaseRandom:
		for i, word := range words {
			bit, err := rnd.NextInt(0, 2)
			if err != nil {
				return nil, fmt.Errorf("drawing case bit for word %d: %w", i, err)
			}
			if bit == 1 {
				out[i] = strings.ToUpper(word)
			} else {
				out[i] = word
			}
		}

	case models.CaseAlternate:
		for i, word := range words {
			if i%2 == 1 {
				out[i] = strings.ToUpper(word)
			} else {
				out[i] = word
			}
		}

	case models.CaseLower:
		for i, word := range words {
			out[i] = strings.ToLower(word)
		}

	case models.CaseUpper:
		for i, word := range words {
			out[i] = strings.ToUpper(word)
		}

	default:
		return nil, fmt.Errorf("%w: unknown case policy %q", ErrInvalidConfiguration, policy)
	}

	return out, nil
}

// upperFirst upper-cases the first rune of word and leaves the remainder as
// it appears in the dictionary.
func upperFirst(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}

	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
