// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a remote generation server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Transport-level failures are mapped back to the domain sentinel errors of
// the service and dictionary packages by mapHTTPError, so callers can use
// [errors.Is] without knowing whether generation ran locally or remotely.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-xkpasswd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with a remote
// generation server. Implementations are responsible for serialisation and
// for mapping transport-level errors to domain sentinel values.
type ServerAdapter interface {
	// GeneratePasswords asks the server to synthesize passwords for the given
	// request. Returns the generated passwords with their entropy estimates.
	GeneratePasswords(ctx context.Context, req models.GenerateRequest) ([]models.Password, error)

	// Presets fetches every preset the server ships, with the concrete
	// configuration each one resolves to.
	Presets(ctx context.Context) ([]models.PresetInfo, error)

	// Version returns the server's build version string.
	Version(ctx context.Context) (string, error)
}
