package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-vault/internal/client"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/session"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/tui"
	"github.com/MKhiriev/go-note-vault/internal/utils"
	"github.com/MKhiriev/go-note-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-note-vault").Fatal().Err(err).Msg("error getting configs")
	}

	log, closeLog := logger.NewFileLogger("go-note-vault", cfg.App.LogFile)
	defer closeLog()

	if err = run(cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("vault run error")
		fmt.Fprintln(os.Stderr, "vault:", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := store.NewKVStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if closeErr := kv.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storage")
		}
	}()

	vault := session.NewVaultSession(
		kv,
		crypto.NewKeyDerivation(cfg.App.KDFIterations),
		crypto.NewAuthenticatedCipher(),
		utils.NewEntryIDGenerator(),
		cfg.Storage,
		log,
	)

	ui, err := tui.New(vault, buildInfo, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(vault, session.NewAutoLockJob(vault, log), ui, cfg.App, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(info)
	return info
}
