package service

import (
	"github.com/MKhiriev/go-count-updater/internal/adapter"
	"github.com/MKhiriev/go-count-updater/internal/config"
	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/store"
)

type Services struct {
	SessionService  SessionService
	UpdateService   UpdateService
	UpdateScheduler UpdateScheduler
}

func NewServices(serverAdapter adapter.ServerAdapter, requestLog store.RequestLog, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	rng := globalRand{}

	sessionSvc := NewSessionService(serverAdapter, cfg.App.IdentityAddress, requestLog, logger.Component("session"))
	updateSvc := NewUpdateService(
		serverAdapter,
		sessionSvc,
		requestLog,
		rng,
		cfg.Updates.MinCount,
		cfg.Updates.MaxCount,
		logger.Component("update"),
	)

	return &Services{
		SessionService:  sessionSvc,
		UpdateService:   updateSvc,
		UpdateScheduler: NewUpdateScheduler(updateSvc, rng, cfg.Workers.RetryDelay, cfg.Workers.ExtraRequests, logger.Component("scheduler")),
	}
}
