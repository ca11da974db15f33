package service

import (
	"math"

	"github.com/MKhiriev/go-xkpasswd/models"
)

// computeEntropy estimates the strength of one configuration against a
// filtered dictionary. It is a pure calculation over the configuration and
// the candidate word lengths; it consumes no randomness.
//
// Seen entropy counts only the random choices an attacker with full
// knowledge of the scheme still has to guess: word picks, case bits, digit
// draws, and the separator and padding symbol choices. Blind entropy bounds
// what a character-by-character brute force faces, using the effective
// output alphabet and the minimum/maximum possible password length.
func computeEntropy(cfg models.Configuration, filtered []string) models.Entropy {
	seen := float64(cfg.NumWords) * log2(len(filtered))

	if cfg.Case == models.CaseRandom {
		seen += float64(cfg.NumWords) // one bit per word
	}
	if cfg.PaddingDigitsBefore > 0 {
		seen += math.Log2(digitDrawBound)
	}
	if cfg.PaddingDigitsAfter > 0 {
		seen += math.Log2(digitDrawBound)
	}
	if cfg.SeparatorsEnabled() {
		seen += log2(len([]rune(cfg.SeparatorCharacters)))
	}
	if cfg.NeedsPaddingSymbol() {
		seen += log2(len([]rune(cfg.PaddingSymbols)))
	}

	minLen, maxLen := lengthBounds(cfg, filtered)
	alphabet := outputAlphabetSize(cfg)

	return models.Entropy{
		BlindMin: float64(minLen) * log2(alphabet),
		BlindMax: float64(maxLen) * log2(alphabet),
		Seen:     seen,
	}
}

// lengthBounds returns the minimum and maximum possible character length of
// an assembled password for cfg over the given candidate words.
func lengthBounds(cfg models.Configuration, filtered []string) (int, int) {
	shortest, longest := 0, 0
	for i, word := range filtered {
		n := len([]rune(word))
		if i == 0 || n < shortest {
			shortest = n
		}
		if n > longest {
			longest = n
		}
	}

	fixed := cfg.PaddingDigitsBefore + cfg.PaddingDigitsAfter +
		cfg.PaddingSymbolsBefore + cfg.PaddingSymbolsAfter

	if cfg.SeparatorsEnabled() {
		fixed += cfg.NumWords - 1
		if cfg.PaddingDigitsBefore > 0 {
			fixed++
		}
		if cfg.PaddingDigitsAfter > 0 {
			fixed++
		}
	}

	minLen := fixed + cfg.NumWords*shortest
	maxLen := fixed + cfg.NumWords*longest

	if cfg.PadToLength > 0 {
		if minLen < cfg.PadToLength {
			minLen = cfg.PadToLength
		}
		if maxLen < cfg.PadToLength {
			maxLen = cfg.PadToLength
		}
	}

	return minLen, maxLen
}

// outputAlphabetSize counts the characters a generated password may contain:
// lower-case letters, upper-case letters when the case policy can produce
// them, decimal digits, and the configured symbol sets.
func outputAlphabetSize(cfg models.Configuration) int {
	size := 26

	switch cfg.Case {
	case models.CaseFirstUpper, models.CaseRandom, models.CaseAlternate, models.CaseUpper:
		size += 26
	}

	if cfg.PaddingDigitsBefore > 0 || cfg.PaddingDigitsAfter > 0 {
		size += 10
	}
	if cfg.SeparatorsEnabled() {
		size += len([]rune(cfg.SeparatorCharacters))
	}
	if cfg.NeedsPaddingSymbol() {
		size += len([]rune(cfg.PaddingSymbols))
	}

	return size
}

func log2(n int) float64 {
	if n < 1 {
		return 0
	}
	return math.Log2(float64(n))
}
