// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-xkpasswd/models"
)

// Symbol alphabets shared by the shipped presets.
const (
	// symbolAlphabet is the full 18-symbol set used by the default preset
	// for both separators and padding.
	symbolAlphabet = `!@$%^&*-_+=:|~?/.;`

	// separatorAlphabet is the narrower 9-symbol separator set.
	separatorAlphabet = `-+=.*_|~,`

	// paddingAlphabet is the 13-symbol padding set.
	paddingAlphabet = `!@$%^&*+=:|~?`
)

// presets is the process-wide preset table: a literal, fixed mapping from
// canonical preset name to the complete configuration it stands for.
// Initialized once, never mutated, safe to share across concurrent calls.
var presets = map[string]models.Configuration{
	"DEFAULT": {
		NumWords:             3,
		WordLengthMin:        4,
		WordLengthMax:        8,
		Case:                 models.CaseAlternate,
		SeparatorCharacters:  symbolAlphabet,
		PaddingDigitsBefore:  2,
		PaddingDigitsAfter:   2,
		PaddingSymbols:       symbolAlphabet,
		PaddingSymbolsBefore: 2,
		PaddingSymbolsAfter:  2,
	},
	"APPLEID": {
		NumWords:             3,
		WordLengthMin:        5,
		WordLengthMax:        7,
		Case:                 models.CaseRandom,
		SeparatorCharacters:  `-:.,`,
		PaddingDigitsBefore:  2,
		PaddingDigitsAfter:   2,
		PaddingSymbols:       `!?@&`,
		PaddingSymbolsBefore: 1,
		PaddingSymbolsAfter:  1,
	},
	"NTLM": {
		NumWords:            3,
		WordLengthMin:       5,
		WordLengthMax:       7,
		Case:                models.CaseFirstUpper,
		SeparatorCharacters: separatorAlphabet,
		PaddingDigitsBefore: 1,
		PaddingSymbols:      paddingAlphabet,
		PaddingSymbolsAfter: 1,
	},
	"SECURITYQ": {
		NumWords:            6,
		WordLengthMin:       4,
		WordLengthMax:       8,
		Case:                models.CaseNone,
		SeparatorCharacters: ` `,
		PaddingSymbols:      `.!?`,
		PaddingSymbolsAfter: 1,
	},
	"WEB16": {
		NumWords:             3,
		WordLengthMin:        4,
		WordLengthMax:        4,
		Case:                 models.CaseRandom,
		SeparatorCharacters:  separatorAlphabet,
		PaddingSymbols:       paddingAlphabet,
		PaddingSymbolsBefore: 1,
		PaddingSymbolsAfter:  1,
	},
	"WEB32": {
		NumWords:             4,
		WordLengthMin:        4,
		WordLengthMax:        5,
		Case:                 models.CaseAlternate,
		SeparatorCharacters:  separatorAlphabet,
		PaddingDigitsBefore:  2,
		PaddingDigitsAfter:   2,
		PaddingSymbols:       paddingAlphabet,
		PaddingSymbolsBefore: 1,
		PaddingSymbolsAfter:  1,
	},
	"WIFI": {
		NumWords:            6,
		WordLengthMin:       4,
		WordLengthMax:       8,
		Case:                models.CaseRandom,
		SeparatorCharacters: separatorAlphabet,
		PaddingDigitsBefore: 4,
		PaddingDigitsAfter:  4,
		PaddingSymbols:      paddingAlphabet,
		PadToLength:         63,
	},
	"XKCD": {
		NumWords:            4,
		WordLengthMin:       4,
		WordLengthMax:       8,
		Case:                models.CaseRandom,
		SeparatorCharacters: `-`,
	},
}

// presetDisplayNames maps canonical keys back to conventional spellings for
// listings and help output.
var presetDisplayNames = map[string]string{
	"DEFAULT":   "Default",
	"APPLEID":   "AppleID",
	"NTLM":      "NTLM",
	"SECURITYQ": "SecurityQ",
	"WEB16":     "Web16",
	"WEB32":     "Web32",
	"WIFI":      "WiFi",
	"XKCD":      "XKCD",
}

// Resolve turns a [models.Mode] into the single concrete configuration the
// engine runs with. A non-empty preset name wins in full over any custom
// configuration; the two are never merged. The returned configuration is
// always validated.
func Resolve(mode models.Mode) (models.Configuration, error) {
	if mode.Preset != "" {
		cfg, ok := presets[strings.ToUpper(mode.Preset)]
		if !ok {
			return models.Configuration{}, fmt.Errorf("%w: %q", ErrUnknownPreset, mode.Preset)
		}
		return cfg, nil
	}

	if mode.Custom == nil {
		return models.Configuration{}, fmt.Errorf("%w: neither preset nor custom configuration given", ErrInvalidConfiguration)
	}

	if err := validateConfiguration(*mode.Custom); err != nil {
		return models.Configuration{}, err
	}

	return *mode.Custom, nil
}

// Presets returns every shipped preset with its resolved configuration,
// sorted by name.
func Presets() []models.PresetInfo {
	infos := make([]models.PresetInfo, 0, len(presets))
	for key, cfg := range presets {
		infos = append(infos, models.PresetInfo{
			Name:   presetDisplayNames[key],
			Config: cfg,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	return infos
}

// validateConfiguration checks the basic numeric invariants of a custom
// configuration.
func validateConfiguration(cfg models.Configuration) error {
	if cfg.NumWords < 1 {
		return fmt.Errorf("%w: number of words must be at least 1, got %d", ErrInvalidConfiguration, cfg.NumWords)
	}
	if cfg.WordLengthMin < 0 || cfg.WordLengthMax < 0 {
		return fmt.Errorf("%w: negative word length bound", ErrInvalidConfiguration)
	}
	if cfg.WordLengthMin > 0 && cfg.WordLengthMax > 0 && cfg.WordLengthMin > cfg.WordLengthMax {
		return fmt.Errorf("%w: minimum word length %d above maximum %d", ErrInvalidConfiguration, cfg.WordLengthMin, cfg.WordLengthMax)
	}
	if !cfg.Case.Valid() {
		return fmt.Errorf("%w: unknown case policy %q", ErrInvalidConfiguration, cfg.Case)
	}
	if cfg.PaddingDigitsBefore < 0 || cfg.PaddingDigitsAfter < 0 {
		return fmt.Errorf("%w: negative padding digit count", ErrInvalidConfiguration)
	}
	if cfg.PaddingDigitsBefore > maxPaddingDigits || cfg.PaddingDigitsAfter > maxPaddingDigits {
		return fmt.Errorf("%w: padding digit count above %d", ErrInvalidConfiguration, maxPaddingDigits)
	}
	if cfg.PaddingSymbolsBefore < 0 || cfg.PaddingSymbolsAfter < 0 {
		return fmt.Errorf("%w: negative padding symbol count", ErrInvalidConfiguration)
	}
	if cfg.PadToLength < 0 {
		return fmt.Errorf("%w: negative pad-to length", ErrInvalidConfiguration)
	}
	if len(cfg.PaddingSymbols) == 0 &&
		(cfg.PaddingSymbolsBefore > 0 || cfg.PaddingSymbolsAfter > 0 || cfg.PadToLength > 0) {
		return fmt.Errorf("%w: padding requested with empty symbol set", ErrInvalidConfiguration)
	}

	return nil
}
