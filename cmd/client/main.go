package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/adapter"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/client"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/remoteconfig"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/service"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/state"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/store"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("enrollment-client")
	log.Info().Str("build", buildInfo.String()).Msg("starting")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	defaultURL, err := adapter.NormalizeBaseURL(cfg.RemoteConfig.DefaultAPIBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid default api base url")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	registry, err := remoteconfig.DefaultRegistry(defaultURL)
	if err != nil {
		log.Fatal().Err(err).Msg("create config registry")
	}

	provider, err := remoteconfig.NewHTTPProvider(ctx, cfg.RemoteConfig, storages.SnapshotRepository, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote config provider")
	}

	enrollmentAdapter, err := adapter.NewHTTPEnrollmentAdapter(cfg.Adapter, cfg.App, defaultURL, adapter.NewRequestLogger(log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create enrollment adapter")
	}

	services, err := service.NewClientServices(registry, provider, state.NewStore(defaultURL), enrollmentAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
