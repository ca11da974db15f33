package config

import "errors"

// Validation errors returned by the config builders when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid daemon settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGeneratorConfigs indicates generator settings that cannot
	// be turned into an engine mode (for example, a negative count).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote-mode settings
	// (for example, a remote address without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
