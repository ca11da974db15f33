package models

// CasePolicy selects how sampled words are re-cased before assembly.
// The set of policies is closed; unknown values are rejected during
// configuration validation.
type CasePolicy string

const (
	// CaseNone leaves every word exactly as it appears in the dictionary.
	CaseNone CasePolicy = "none"

	// CaseFirstUpper upper-cases the first letter of every word and leaves
	// the remainder untouched.
	CaseFirstUpper CasePolicy = "first_upper"

	// CaseRandom upper-cases each word with probability 1/2, decided by one
	// random bit per word.
	CaseRandom CasePolicy = "random"

	// CaseAlternate upper-cases every word at an odd position (0-based:
	// the 2nd, 4th, ... word) and leaves even positions untouched.
	CaseAlternate CasePolicy = "alternate"

	// CaseLower forces every word to lower case.
	CaseLower CasePolicy = "lower"

	// CaseUpper forces every word to upper case.
	CaseUpper CasePolicy = "upper"
)

// Valid reports whether p is one of the known case policies.
// The empty string counts as CaseNone.
func (p CasePolicy) Valid() bool {
	switch p {
	case CaseNone, CaseFirstUpper, CaseRandom, CaseAlternate, CaseLower, CaseUpper, "":
		return true
	}
	return false
}

// Configuration is the complete, immutable parameter set consumed by the
// password engine. A value is built once per invocation, either from a
// resolved preset or from caller-supplied parameters, and never mutated.
type Configuration struct {
	// NumWords is the number of dictionary words in the password.
	NumWords int `json:"num_words"`

	// WordLengthMin and WordLengthMax bound the character length of
	// candidate words (closed range). Zero means "unset": an unset minimum
	// defaults to 1, an unset maximum leaves the range open above.
	WordLengthMin int `json:"word_length_min"`
	WordLengthMax int `json:"word_length_max"`

	// Case is the casing policy applied to the sampled words.
	Case CasePolicy `json:"case"`

	// SeparatorCharacters is the set of candidate separator characters.
	// One character is drawn per generated password and reused between
	// every adjacent fragment. An empty set disables separators entirely.
	SeparatorCharacters string `json:"separator_characters"`

	// PaddingDigitsBefore and PaddingDigitsAfter are the number of random
	// decimal digits emitted before the first and after the last word.
	PaddingDigitsBefore int `json:"padding_digits_before"`
	PaddingDigitsAfter  int `json:"padding_digits_after"`

	// PaddingSymbols is the set of candidate padding symbols. One symbol is
	// drawn per generated password and reused for every padding slot.
	PaddingSymbols string `json:"padding_symbols"`

	// PaddingSymbolsBefore and PaddingSymbolsAfter are the number of copies
	// of the padding symbol emitted at the very start and very end.
	PaddingSymbolsBefore int `json:"padding_symbols_before"`
	PaddingSymbolsAfter  int `json:"padding_symbols_after"`

	// PadToLength, when positive, grows the assembled password to exactly
	// this many characters by appending copies of the padding symbol.
	// Passwords already at or beyond the target are never truncated.
	PadToLength int `json:"pad_to_length"`
}

// SeparatorsEnabled reports whether separator emission is active.
func (c Configuration) SeparatorsEnabled() bool {
	return len(c.SeparatorCharacters) > 0
}

// NeedsPaddingSymbol reports whether assembly will use the padding symbol,
// i.e. whether a padding-symbol draw is required at all.
func (c Configuration) NeedsPaddingSymbol() bool {
	if len(c.PaddingSymbols) == 0 {
		return false
	}
	return c.PaddingSymbolsBefore > 0 || c.PaddingSymbolsAfter > 0 || c.PadToLength > 0
}

// Mode is the tagged "preset or custom" variant: exactly one of the two
// fields is meaningful. A non-empty Preset always wins in full; preset and
// custom parameters are never merged.
type Mode struct {
	// Preset is the name of a named configuration template
	// (e.g. "XKCD", "WiFi"). Empty means "use Custom".
	Preset string `json:"preset,omitempty"`

	// Custom is the caller-supplied configuration, used only when Preset
	// is empty.
	Custom *Configuration `json:"custom,omitempty"`
}
