// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-xkpasswd/models"
)

// SeparatorsDisabled is the sentinel value that switches separator emission
// off entirely: words are concatenated back to back.
const SeparatorsDisabled = "NONE"

// StructuredConfig is the top-level configuration container for go-xkpasswd.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Generator holds the passphrase engine parameters: either a preset
	// name or a full custom parameter set.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Dictionary holds the word-list source settings.
	Dictionary Dictionary `envPrefix:"DICTIONARY_"`

	// Server holds network address and timeout settings for the HTTP
	// daemon.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for generating against a remote daemon
	// instead of the in-process engine.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers of the daemon.
	Workers Workers `envPrefix:"WORKERS_"`

	// CLI holds interactive-session settings of the command-line binary.
	CLI CLI `envPrefix:"CLI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Generator holds every tunable parameter of the passphrase engine.
// A non-empty Preset overrides the individual parameters in full.
type Generator struct {
	// Preset names a configuration template (e.g. "XKCD", "WiFi").
	// Env: GENERATOR_PRESET
	Preset string `env:"PRESET"`

	// NumWords is the number of dictionary words per password.
	// Env: GENERATOR_NUM_WORDS
	NumWords int `env:"NUM_WORDS"`

	// WordLengthMin and WordLengthMax bound candidate word lengths.
	// Env: GENERATOR_WORD_LENGTH_MIN / GENERATOR_WORD_LENGTH_MAX
	WordLengthMin int `env:"WORD_LENGTH_MIN"`
	WordLengthMax int `env:"WORD_LENGTH_MAX"`

	// Case is the case policy name: none, first_upper, random, alternate,
	// lower, or upper.
	// Env: GENERATOR_CASE
	Case string `env:"CASE"`

	// Separators is the candidate separator character set. The sentinel
	// value "NONE" disables separators.
	// Env: GENERATOR_SEPARATORS
	Separators string `env:"SEPARATORS"`

	// PaddingDigitsBefore / PaddingDigitsAfter are the digit-padding
	// group sizes.
	// Env: GENERATOR_PADDING_DIGITS_BEFORE / GENERATOR_PADDING_DIGITS_AFTER
	PaddingDigitsBefore int `env:"PADDING_DIGITS_BEFORE"`
	PaddingDigitsAfter  int `env:"PADDING_DIGITS_AFTER"`

	// PaddingSymbols is the candidate padding symbol set.
	// Env: GENERATOR_PADDING_SYMBOLS
	PaddingSymbols string `env:"PADDING_SYMBOLS"`

	// PaddingSymbolsBefore / PaddingSymbolsAfter are the symbol-padding
	// counts at the start and end of the password.
	// Env: GENERATOR_PADDING_SYMBOLS_BEFORE / GENERATOR_PADDING_SYMBOLS_AFTER
	PaddingSymbolsBefore int `env:"PADDING_SYMBOLS_BEFORE"`
	PaddingSymbolsAfter  int `env:"PADDING_SYMBOLS_AFTER"`

	// PadToLength grows every password to this exact character count.
	// Env: GENERATOR_PAD_TO_LENGTH
	PadToLength int `env:"PAD_TO_LENGTH"`

	// Count is the number of passwords generated per invocation.
	// Env: GENERATOR_COUNT
	Count int `env:"COUNT"`
}

// Dictionary holds word-list source settings.
type Dictionary struct {
	// Path is the word-list file, one word per line. Empty means the
	// embedded default list.
	// Env: DICTIONARY_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the HTTP daemon.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for the remote-generation mode of the CLI.
type Adapter struct {
	// HTTPAddress is the base URL of a running go-xkpasswd daemon
	// (e.g. "http://localhost:8080"). Empty means generate in process.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one remote generation request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the daemon's background workers.
type Workers struct {
	// DictionaryReloadInterval is how often the dictionary file is checked
	// for changes. Zero disables the reload worker.
	// Env: WORKERS_DICTIONARY_RELOAD_INTERVAL
	DictionaryReloadInterval time.Duration `env:"DICTIONARY_RELOAD_INTERVAL"`
}

// CLI holds settings that only affect the command-line binary.
type CLI struct {
	// Copy puts the first generated password on the system clipboard.
	// Env: CLI_COPY
	Copy bool `env:"COPY"`

	// Interactive starts the TUI instead of one-shot generation.
	// Env: CLI_INTERACTIVE
	Interactive bool `env:"INTERACTIVE"`

	// Verbose lowers the CLI log level to Debug.
	// Env: CLI_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// Mode converts the generator group into the engine's tagged mode value.
// A non-empty Preset wins in full. When no preset and no custom parameters
// are given, the "Default" preset applies. The "NONE" separator sentinel
// maps to the empty (disabled) set.
func (g Generator) Mode() models.Mode {
	if g.Preset != "" {
		return models.Mode{Preset: g.Preset}
	}

	// Count is an output option, not a generation parameter: it alone must
	// not switch the engine into custom-configuration mode.
	params := g
	params.Count = 0
	if params == (Generator{}) {
		return models.Mode{Preset: "Default"}
	}

	separators := g.Separators
	if strings.EqualFold(separators, SeparatorsDisabled) {
		separators = ""
	}

	return models.Mode{Custom: &models.Configuration{
		NumWords:             g.NumWords,
		WordLengthMin:        g.WordLengthMin,
		WordLengthMax:        g.WordLengthMax,
		Case:                 models.CasePolicy(g.Case),
		SeparatorCharacters:  separators,
		PaddingDigitsBefore:  g.PaddingDigitsBefore,
		PaddingDigitsAfter:   g.PaddingDigitsAfter,
		PaddingSymbols:       g.PaddingSymbols,
		PaddingSymbolsBefore: g.PaddingSymbolsBefore,
		PaddingSymbolsAfter:  g.PaddingSymbolsAfter,
		PadToLength:          g.PadToLength,
	}}
}

// GetServerConfig loads, merges, and validates the daemon configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetServerConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build(validateServer)
}

// GetCLIConfig loads and merges the command-line binary configuration from
// the same sources as [GetServerConfig], with CLI-specific validation.
func GetCLIConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build(validateCLI)
}
