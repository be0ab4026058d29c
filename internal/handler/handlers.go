// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/handler/grpc"
	"github.com/vitorpontobarbosa/GameLibrary/internal/handler/http"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/metrics"
	"github.com/vitorpontobarbosa/GameLibrary/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers enabled in cfg. db backs the
// gRPC storage health check; m and metricsHandler may be nil.
func NewHandlers(
	services *service.Services,
	db grpc.Pinger,
	m *metrics.Metrics,
	metricsHandler nethttp.Handler,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, metricsHandler, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(db, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransports
	}

	return handlers, nil
}
