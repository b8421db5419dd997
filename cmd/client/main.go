package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/doc-vault/internal/adapter"
	"github.com/MKhiriev/doc-vault/internal/biometric"
	"github.com/MKhiriev/doc-vault/internal/client"
	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/tui"
	"github.com/MKhiriev/doc-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo()
		return
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// the terminal belongs to the UI, logs go to a file
	log := logger.NewClientLogger("docvault-client", cfg.LogFile)

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "docvault: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	probe, err := adapter.NewConnectivityProbe(serverAdapter, cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create connectivity probe: %w", err)
	}
	defer probe.Close()

	// the prompt text is shown by the UI, built below
	var ui *tui.TUI
	bio, err := biometric.New(cfg.Gate.Biometric, func(text string) { ui.ShowBiometricPrompt(text) })
	if err != nil {
		return fmt.Errorf("biometric prompt: %w", err)
	}

	services := service.NewClientServices(storages.SecretStore, serverAdapter, probe, cfg.Workers, log)

	unlockGate := gate.New(probe, services.AuthService, storages.SecretStore, bio, gate.Options{
		MaxPinAttempts:    cfg.Gate.MaxPinAttempts,
		StrictSecretReads: cfg.Gate.StrictSecretReads,
	}, log)

	ui = tui.New(ctx, services, unlockGate, storages.SecretStore, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	return client.NewApp(services, ui, log).Run(ctx)
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
