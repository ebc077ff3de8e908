package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/service"
	"github.com/MKhiriev/go-count-updater/internal/workers"
)

type App struct {
	services *service.Services
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.Services, logger *logger.Logger) *App {
	return &App{
		services: services,
		workers:  workers.NewWorkers(services.UpdateScheduler),
		logger:   logger,
	}
}

// Run performs the startup login and then runs the workers until ctx is
// done. A failed startup login is returned to the caller, which treats it
// as fatal.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("starting the process")

	if err := a.services.SessionService.Login(ctx); err != nil {
		return fmt.Errorf("startup login: %w", err)
	}

	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("run workers: %w", err)
	}

	a.logger.Info().Msg("process stopped")
	return nil
}
