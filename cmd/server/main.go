// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/handler"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/metrics"
	"github.com/vitorpontobarbosa/GameLibrary/internal/server"
	"github.com/vitorpontobarbosa/GameLibrary/internal/service"
	"github.com/vitorpontobarbosa/GameLibrary/internal/store"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("game-library-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	registry := metrics.NewRegistry()
	m := metrics.NewMetrics(registry)
	if err = metrics.RegisterDBStats(registry, db.DB, "games"); err != nil {
		log.Fatal().Err(err).Msg("error registering database metrics")
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, db, m, metrics.Handler(registry), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
