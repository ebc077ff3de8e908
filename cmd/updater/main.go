package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-count-updater/internal/adapter"
	"github.com/MKhiriev/go-count-updater/internal/client"
	"github.com/MKhiriev/go-count-updater/internal/config"
	"github.com/MKhiriev/go-count-updater/internal/logger"
	"github.com/MKhiriev/go-count-updater/internal/service"
	"github.com/MKhiriev/go-count-updater/internal/store"
	"github.com/MKhiriev/go-count-updater/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-count-updater")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.Component("adapter"))
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewServices(serverAdapter, store.NewRequestLog(), cfg, log)

	app := client.NewApp(services, log)
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("critical error, exiting")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
