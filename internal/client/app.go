package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-xkpasswd/internal/adapter"
	"github.com/MKhiriev/go-xkpasswd/internal/config"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/tui"
	"github.com/MKhiriev/go-xkpasswd/models"
	"github.com/atotto/clipboard"
)

type App struct {
	cfg       *config.StructuredConfig
	generator Generator
	build     models.AppBuildInfo

	logger *logger.Logger
}

// NewApp wires the generation backend from the resolved configuration: a
// remote adapter when an address is configured, the in-process engine
// otherwise.
func NewApp(cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	var (
		generator Generator
		err       error
	)

	if cfg.Adapter.HTTPAddress != "" {
		generator, err = adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	} else {
		generator, err = NewLocalGenerator(cfg.Dictionary, build.BuildVersion(), logger)
	}
	if err != nil {
		return nil, fmt.Errorf("create generation backend: %w", err)
	}

	return &App{
		cfg:       cfg,
		generator: generator,
		build:     build,
		logger:    logger,
	}, nil
}

// Run executes one client session: the interactive UI when requested,
// otherwise a single generation printed to stdout.
func (a *App) Run() error {
	ctx := context.Background()

	if a.cfg.CLI.Interactive {
		return tui.New(a.generator, a.build.BuildVersion()).Run(ctx)
	}

	return a.generateOnce(ctx)
}

func (a *App) generateOnce(ctx context.Context) error {
	mode := a.cfg.Generator.Mode()
	passwords, err := a.generator.GeneratePasswords(ctx, models.GenerateRequest{
		Preset: mode.Preset,
		Config: mode.Custom,
		Count:  a.cfg.Generator.Count,
	})
	if err != nil {
		return err
	}
	if len(passwords) == 0 {
		// The local engine always returns at least one password; a remote
		// daemon is not trusted to.
		return ErrNoPasswordsReturned
	}

	// Passwords are the only thing written to stdout, so output stays
	// pipe- and script-friendly.
	for _, password := range passwords {
		fmt.Println(password.Phrase)
	}

	entropy := passwords[0].Entropy
	a.logger.Debug().
		Float64("blind_min", entropy.BlindMin).
		Float64("blind_max", entropy.BlindMax).
		Float64("seen", entropy.Seen).
		Msg("entropy estimate, bits")

	if a.cfg.CLI.Copy {
		if err := clipboard.WriteAll(passwords[0].Phrase); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.logger.Info().Msg("first password copied to clipboard")
	}

	return nil
}
