// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-xkpasswd/internal/random"
	"github.com/MKhiriev/go-xkpasswd/models"
)

// maxPaddingDigits bounds a single digit-padding group. One group is cut
// from one zero-padded draw in [0, digitDrawBound), which yields exactly
// five digit characters.
const maxPaddingDigits = 5

const digitDrawBound = 99999

// assemble builds the final password string from the transformed words and
// the configuration.
//
// The separator character and the padding symbol are each drawn once up
// front and threaded through the whole assembly: every separator occurrence
// within one password is the same character, and so is every padding-symbol
// occurrence. The ordered fragment list is the single source of truth for
// the output; the returned password is its plain concatenation.
func assemble(words []string, cfg models.Configuration, rnd random.Source) (string, error) {
	separator, err := drawCharacter(cfg.SeparatorCharacters, cfg.SeparatorsEnabled(), rnd)
	if err != nil {
		return "", fmt.Errorf("drawing separator: %w", err)
	}

	padSymbol, err := drawCharacter(cfg.PaddingSymbols, cfg.NeedsPaddingSymbol(), rnd)
	if err != nil {
		return "", fmt.Errorf("drawing padding symbol: %w", err)
	}

	var parts []string

	for i := 0; i < cfg.PaddingSymbolsBefore; i++ {
		parts = append(parts, padSymbol)
	}

	if cfg.PaddingDigitsBefore > 0 {
		digits, err := drawDigits(cfg.PaddingDigitsBefore, rnd)
		if err != nil {
			return "", err
		}
		parts = append(parts, digits)
		if cfg.SeparatorsEnabled() {
			parts = append(parts, separator)
		}
	}

	for i, word := range words {
		parts = append(parts, word)
		if cfg.SeparatorsEnabled() && i < len(words)-1 {
			parts = append(parts, separator)
		}
	}

	if cfg.PaddingDigitsAfter > 0 {
		if cfg.SeparatorsEnabled() {
			parts = append(parts, separator)
		}
		digits, err := drawDigits(cfg.PaddingDigitsAfter, rnd)
		if err != nil {
			return "", err
		}
		parts = append(parts, digits)
	}

	for i := 0; i < cfg.PaddingSymbolsAfter; i++ {
		parts = append(parts, padSymbol)
	}

	password := strings.Join(parts, "")

	// grow to the fixed length, never truncate
	if cfg.PadToLength > 0 && padSymbol != "" {
		for utf8.RuneCountInString(password) < cfg.PadToLength {
			password += padSymbol
		}
	}

	return password, nil
}

// drawCharacter picks one character of alphabet uniformly at random. It
// returns the empty string without consuming a draw when the feature is
// disabled, so deterministic tests can account for every draw.
func drawCharacter(alphabet string, enabled bool, rnd random.Source) (string, error) {
	if !enabled || len(alphabet) == 0 {
		return "", nil
	}

	runes := []rune(alphabet)
	idx, err := rnd.NextInt(0, len(runes))
	if err != nil {
		return "", err
	}

	return string(runes[idx]), nil
}

// drawDigits draws one random number in [0, digitDrawBound), formats it
// zero-padded to five characters, and returns the leftmost n of them. The
// zero-padding keeps every position a uniform decimal digit; without it a
// small draw would shorten the group.
func drawDigits(n int, rnd random.Source) (string, error) {
	value, err := rnd.NextInt(0, digitDrawBound)
	if err != nil {
		return "", fmt.Errorf("drawing digit padding: %w", err)
	}

	return fmt.Sprintf("%05d", value)[:n], nil
}
