// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-xkpasswd/models"
)

// Generator abstracts the generation backend. The in-process engine and the
// HTTP adapter both satisfy it, so the rest of the client cannot tell whether
// passwords are produced locally or remotely.
type Generator interface {
	// GeneratePasswords synthesizes passwords for the given request.
	GeneratePasswords(ctx context.Context, req models.GenerateRequest) ([]models.Password, error)

	// Presets returns every shipped preset with its resolved configuration.
	Presets(ctx context.Context) ([]models.PresetInfo, error)

	// Version returns the backend's build version.
	Version(ctx context.Context) (string, error)
}
