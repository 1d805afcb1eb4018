package main

import (
	"context"
	"fmt"

	"github.com/creditguard/creditguard-client/internal/adapter"
	"github.com/creditguard/creditguard-client/internal/client"
	"github.com/creditguard/creditguard-client/internal/config"
	"github.com/creditguard/creditguard-client/internal/events"
	"github.com/creditguard/creditguard-client/internal/logger"
	"github.com/creditguard/creditguard-client/internal/router"
	"github.com/creditguard/creditguard-client/internal/service"
	"github.com/creditguard/creditguard-client/internal/store"
	"github.com/creditguard/creditguard-client/internal/tui"
	"github.com/creditguard/creditguard-client/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx := context.Background()

	log := logger.NewClientLogger("creditguard-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	tokens := store.NewTokenStore(ctx, cfg.Storage, log)

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, tokens, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server gateway")
	}

	bus := events.NewBus()
	services := service.NewServices(tokens, gateway, bus, log)

	refresh := workers.NewRefreshWorker(services.Dashboard, services.Session, cfg.Workers.RefreshInterval, log)

	ui, err := tui.New(services, router.New(), tui.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewWorkers(refresh), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
