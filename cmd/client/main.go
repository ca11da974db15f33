package main

import (
	"github.com/MKhiriev/go-xkpasswd/internal/client"
	"github.com/MKhiriev/go-xkpasswd/internal/config"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetCLIConfig()
	if err != nil {
		logger.NewCLILogger("xkpasswd", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewCLILogger("xkpasswd", cfg.CLI.Verbose)
	log.Debug().Any("config", cfg).Msg("received configs")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().
		Str("version", build.BuildVersion()).
		Str("date", build.BuildDate()).
		Str("commit", build.BuildCommit()).
		Msg("build info")

	app, err := client.NewApp(cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
