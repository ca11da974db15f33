package service

import (
	"context"

	"github.com/MKhiriev/go-xkpasswd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/password_service_mock.go -package=mock

// PasswordService is the engine entry point: it synthesizes passphrases for
// one resolved configuration. Implementations hold no mutable state, so a
// single service value may be shared between concurrent callers as long as
// its random source is safe for concurrent use.
type PasswordService interface {
	// Generate synthesizes one password.
	Generate(ctx context.Context) (models.Password, error)

	// GenerateN synthesizes n passwords, each drawn independently.
	// Values of n below one are treated as one.
	GenerateN(ctx context.Context, n int) ([]models.Password, error)

	// Configuration returns the resolved configuration the service was
	// built with.
	Configuration() models.Configuration
}
