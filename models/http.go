package models

// GenerateRequest is the body of POST /api/generate.
// Preset and Config follow Mode semantics: a non-empty Preset fully
// overrides Config.
type GenerateRequest struct {
	// Preset names a configuration template. Optional.
	Preset string `json:"preset,omitempty"`

	// Config is a full custom configuration. Used only when Preset is empty.
	Config *Configuration `json:"config,omitempty"`

	// Count is the number of passwords to generate. Zero defaults to one.
	Count int `json:"count,omitempty"`
}

// GenerateResponse is the body returned by POST /api/generate.
type GenerateResponse struct {
	Passwords []Password `json:"passwords"`
}

// PresetInfo is one entry of GET /api/presets: a preset name plus the
// concrete configuration it resolves to.
type PresetInfo struct {
	Name   string        `json:"name"`
	Config Configuration `json:"config"`
}

// VersionResponse is the body returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
