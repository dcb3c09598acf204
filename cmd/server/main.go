// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-envios/internal/config"
	"github.com/MKhiriev/go-envios/internal/handler"
	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/server"
	"github.com/MKhiriev/go-envios/internal/service"
	"github.com/MKhiriev/go-envios/internal/store"
	"github.com/MKhiriev/go-envios/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("envios-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLogger("envios-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err = storages.ShipmentStorage.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing storage")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server error")
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
