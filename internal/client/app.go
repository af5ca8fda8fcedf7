package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/internal/store"
	"github.com/MKhiriev/go-wa-desk/internal/workers"
)

// UI is the interactive surface run by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp assembles the desk. storages may be nil when the catalog could not
// be opened; the UI then runs without catalog tabs and no workers start.
func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui UI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client app: services and ui are required")
	}

	return &App{
		services: services,
		storages: storages,
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewOverdueWorker(services.OverdueJob, workersCfg.OverdueSweepInterval)),
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.workers.Run(ctx)
	defer func() {
		a.workers.Stop()
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("closing storage failed")
		}
	}()

	a.logger.Info().Bool("catalog", a.services.HasCatalog()).Msg("desk started")
	return a.ui.Run(ctx)
}
