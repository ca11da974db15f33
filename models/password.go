package models

// Password is one generated passphrase together with its strength estimate.
type Password struct {
	// Phrase is the assembled password string.
	Phrase string `json:"phrase"`

	// Entropy describes the estimated strength of the configuration that
	// produced the phrase. It depends only on the configuration and the
	// filtered dictionary size, not on the concrete phrase.
	Entropy Entropy `json:"entropy"`
}

// Entropy is a strength estimate in bits, following the usual split between
// an attacker who knows nothing about the scheme and one who knows the
// configuration and dictionary.
type Entropy struct {
	// BlindMin and BlindMax bound the entropy seen by an attacker who
	// brute-forces character by character without knowing the scheme.
	// They differ when the password length varies between invocations.
	BlindMin float64 `json:"blind_min"`
	BlindMax float64 `json:"blind_max"`

	// Seen is the entropy seen by an attacker with full knowledge of the
	// configuration and the dictionary: only the random choices count.
	Seen float64 `json:"seen"`
}
