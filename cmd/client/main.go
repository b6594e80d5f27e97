package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/velikanov/groupsync/internal/client"
	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("groupsync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	groupID := flag.Arg(0)
	if groupID == "" {
		log.Fatal().Msg("usage: groupsync-client [flags] <group-id>")
	}

	app, err := client.NewApp(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	defer app.Close()

	ui, err := tui.New(app, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init terminal UI error")
	}

	if err = ui.Run(context.Background(), groupID); err != nil {
		log.Fatal().Err(err).Str("group_id", groupID).Msg("terminal UI exited with error")
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
