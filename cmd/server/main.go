package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/handler"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/server"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/workers"
	"github.com/MKhiriev/doc-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("docvault-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server", cfg.Server).Any("workers", cfg.Workers).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers()
	if handlers.GRPC != nil {
		bg = workers.NewWorkers(workers.NewHealthWorker(storages, handlers.GRPC, cfg.Workers.HealthInterval, log))
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
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
