package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/participant-tracker/internal/adapter"
	"github.com/MKhiriev/participant-tracker/internal/cache"
	"github.com/MKhiriev/participant-tracker/internal/config"
	"github.com/MKhiriev/participant-tracker/internal/handler"
	"github.com/MKhiriev/participant-tracker/internal/logger"
	"github.com/MKhiriev/participant-tracker/internal/server"
	"github.com/MKhiriev/participant-tracker/internal/service"
	"github.com/MKhiriev/participant-tracker/internal/store"
	"github.com/MKhiriev/participant-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("participant-tracker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	progressSource, err := adapter.NewHTTPProgressSource(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating progress service client")
	}

	if cfg.Storage.Cache.Enabled() {
		progressCache, cacheErr := cache.NewCache(ctx, cfg.Storage.Cache, log)
		if cacheErr != nil {
			log.Fatal().Err(cacheErr).Msg("error connecting to progress cache")
		}
		defer progressCache.Close()

		progressSource = adapter.NewCachedProgressSource(progressSource, progressCache)
	}

	services, err := service.NewServices(storages, progressSource, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
