package main

import (
	"context"
	"fmt"

	"github.com/comicgate/comicgate/internal/catalog"
	"github.com/comicgate/comicgate/internal/config"
	httphandler "github.com/comicgate/comicgate/internal/handler/http"
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/internal/server"
	"github.com/comicgate/comicgate/internal/service"
	"github.com/comicgate/comicgate/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("comicgate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	catalogClient := catalog.NewClient(cfg.Catalog, log)
	services := service.NewServices(storages, catalogClient, cfg.App, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
