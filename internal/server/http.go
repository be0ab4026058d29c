// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		logger.Err(err).Str("func", "newHTTPServer").Str("address", cfg.HTTPAddress).Msg("failed to listen")
		return nil, fmt.Errorf("%w on %s: %w", errListening, cfg.HTTPAddress, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) address() string {
	return h.listener.Addr().String()
}

// serve blocks until the server is shut down. A graceful shutdown is not
// reported as an error.
func (h *httpServer) serve() error {
	h.logger.Info().Str("address", h.address()).Msg("HTTP server listening")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
