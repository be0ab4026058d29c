// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported for the catalog API.
// The empty name ("") reports the process as a whole.
const ServiceName = "game_library.v1.Catalog"

// Pinger reports whether the backing database is reachable.
// *store.DB satisfies it through the embedded *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. The overall
// process status follows the server lifecycle, while [ServiceName] also
// tracks database reachability.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. pinger may be nil, in which case
// [ServiceName] is SERVING whenever the process is.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckStorage pings the database once and updates the status of
// [ServiceName] accordingly.
func (h *Handler) CheckStorage(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.pinger != nil {
		if err := h.pinger.PingContext(ctx); err != nil {
			h.logger.Warn().Err(err).Str("func", "*Handler.CheckStorage").Msg("database is unreachable")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.health.SetServingStatus(ServiceName, status)
	return status
}

// WatchStorage runs CheckStorage every interval until ctx is done.
func (h *Handler) WatchStorage(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(ctx, interval)
			h.CheckStorage(checkCtx)
			cancel()
		}
	}
}

// Shutdown marks every service NOT_SERVING. Later status updates are
// ignored, so probes keep seeing NOT_SERVING until the process exits.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health status set to NOT_SERVING")
	h.health.Shutdown()
}
