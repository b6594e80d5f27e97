package main

import (
	"context"
	"fmt"
	"time"

	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/handler"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/server"
	"github.com/velikanov/groupsync/internal/service"
	"github.com/velikanov/groupsync/internal/store"
	"github.com/velikanov/groupsync/internal/workers"
)

const shutdownTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("groupsync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)

	dispatcher := workers.NewDispatcher(workers.NewLogSender(log), cfg.Workers.NotificationQueueSize, log)
	workers.NewWorkers(dispatcher).Run()

	services := service.NewServices(repos, dispatcher, log)
	handlers := handler.NewHandlers(services, cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error draining notification queue")
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
