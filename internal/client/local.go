package client

import (
	"context"

	"github.com/MKhiriev/go-xkpasswd/internal/config"
	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/random"
	"github.com/MKhiriev/go-xkpasswd/internal/service"
	"github.com/MKhiriev/go-xkpasswd/models"
)

// localGenerator runs the engine in-process, against either a user-supplied
// word-list file or the embedded default list.
type localGenerator struct {
	words   dictionary.WordSource
	rnd     random.Source
	version string

	logger *logger.Logger
}

// NewLocalGenerator builds a [Generator] over the in-process engine. With an
// empty cfg.Path the embedded default word list is used; otherwise the file
// is loaded up front so a bad path fails at startup, not on first use.
func NewLocalGenerator(cfg config.Dictionary, version string, logger *logger.Logger) (Generator, error) {
	var words dictionary.WordSource
	if cfg.Path != "" {
		store, err := dictionary.NewStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		words = store
	} else {
		words = dictionary.NewDefaultSource()
	}

	return &localGenerator{
		words:   words,
		rnd:     random.NewCryptoSource(),
		version: version,
		logger:  logger,
	}, nil
}

func (g *localGenerator) GeneratePasswords(ctx context.Context, req models.GenerateRequest) ([]models.Password, error) {
	mode := models.Mode{Preset: req.Preset, Custom: req.Config}
	if mode.Preset == "" && mode.Custom == nil {
		mode.Preset = "Default"
	}

	generator, err := service.NewPasswordService(mode, g.words, g.rnd, g.logger)
	if err != nil {
		return nil, err
	}

	return generator.GenerateN(ctx, req.Count)
}

func (g *localGenerator) Presets(_ context.Context) ([]models.PresetInfo, error) {
	return service.Presets(), nil
}

func (g *localGenerator) Version(_ context.Context) (string, error) {
	return g.version, nil
}
