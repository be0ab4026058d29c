// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/metrics"
	"github.com/vitorpontobarbosa/GameLibrary/internal/service"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// metricsHandler serves GET /metrics. Nil disables the route.
	metricsHandler http.Handler

	traceIDs       *utils.UUIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, metricsHandler http.Handler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		metricsHandler: metricsHandler,
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
