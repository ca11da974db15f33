package main

import (
	"fmt"

	"github.com/MKhiriev/go-xkpasswd/internal/config"
	"github.com/MKhiriev/go-xkpasswd/internal/dictionary"
	myHTTP "github.com/MKhiriev/go-xkpasswd/internal/handler/http"
	"github.com/MKhiriev/go-xkpasswd/internal/logger"
	"github.com/MKhiriev/go-xkpasswd/internal/random"
	"github.com/MKhiriev/go-xkpasswd/internal/server"
	"github.com/MKhiriev/go-xkpasswd/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("xkpasswd-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	words, backgroundWorkers, err := buildWordSource(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading dictionary")
	}

	handler := myHTTP.NewHandler(words, random.NewCryptoSource(), buildVersion, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers.Run()
	srv.RunServer()
}

// buildWordSource picks the word source for the server: a caching store over
// the configured file (with a periodic reload worker), or the embedded
// default list.
func buildWordSource(cfg *config.StructuredConfig, log *logger.Logger) (dictionary.WordSource, *workers.Workers, error) {
	if cfg.Dictionary.Path == "" {
		return dictionary.NewDefaultSource(), workers.NewWorkers(), nil
	}

	store, err := dictionary.NewStore(cfg.Dictionary.Path)
	if err != nil {
		return nil, nil, err
	}

	reload := workers.NewDictionaryReloadWorker(store, cfg.Workers.DictionaryReloadInterval, log)

	return store, workers.NewWorkers(reload), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
