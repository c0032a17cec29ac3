package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"fanbase/internal/adapter"
	"fanbase/internal/config"
	handler "fanbase/internal/handler/http"
	"fanbase/internal/logger"
	"fanbase/internal/server"
	"fanbase/internal/service"
	"fanbase/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fanbase-server")

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.Auth, log)

	var stats adapter.StatsProvider = adapter.NopStatsProvider{}
	if cfg.Stats.BaseURL != "" {
		stats = adapter.NewStatsClient(adapter.StatsClientConfig{
			BaseURL: cfg.Stats.BaseURL,
			Timeout: cfg.Stats.RequestTimeout,
		})
	}

	handlers := handler.NewHandler(services, stats, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
