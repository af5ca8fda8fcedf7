package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/client"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/internal/store"
	"github.com/MKhiriev/go-wa-desk/internal/tui"
	"github.com/MKhiriev/go-wa-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("wadesk", cfg.Log.Level, cfg.Log.File)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("catalog storage unavailable, continuing with the inbox only")
		storages = nil
	}

	services := service.NewClientServices(storages, backend, cfg.Workers)

	ui := tui.New(services, tui.Options{
		BuildInfo:        models.NewBuildInfo(buildVersion, buildDate, buildCommit),
		DefaultRecipient: cfg.App.DefaultRecipient,
	}, log)

	app, err := client.NewApp(services, storages, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "desk stopped: %v\n", err)
		os.Exit(1)
	}
}
