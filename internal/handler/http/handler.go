package http

import (
	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/random"
)

type Handler struct {
	words   dictionary.WordSource
	rnd     random.Source
	version string

	logger *logger.Logger
}

func NewHandler(words dictionary.WordSource, rnd random.Source, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		words:   words,
		rnd:     rnd,
		version: version,
		logger:  logger,
	}
}
