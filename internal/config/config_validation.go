// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validateServer checks the invariants the HTTP daemon needs at startup.
// The generator parameters themselves are validated by the engine when a
// request resolves them; only what the daemon cannot start without is
// checked here.
func validateServer(cfg *StructuredConfig) error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Generator.Count < 0 {
		return ErrInvalidGeneratorConfigs
	}

	return nil
}

// validateCLI checks the invariants of the command-line binary. Remote mode
// needs a timeout so a hung daemon cannot block the terminal forever.
func validateCLI(cfg *StructuredConfig) error {
	if cfg.Generator.Count < 0 {
		return ErrInvalidGeneratorConfigs
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
