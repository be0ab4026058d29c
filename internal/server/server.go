// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/handler"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
)

const (
	shutdownTimeout      = 15 * time.Second
	storageCheckInterval = 15 * time.Second
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			if servers.httpServer != nil {
				servers.httpServer.listener.Close()
			}
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

// Shutdown stops every started server. It is safe to call more than once.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if s.gRPCServer != nil {
			s.gRPCServer.markNotServing()
		}

		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.shutdown(ctx)
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.shutdown()
		}
	})
}

// run serves until ctx is done or one of the transports fails, then shuts
// everything down. The first transport error is returned.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Go(func() { errCh <- s.httpServer.serve() })
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		wg.Go(func() { errCh <- s.gRPCServer.serve() })
		wg.Go(func() { s.gRPCServer.handler.WatchStorage(ctx, storageCheckInterval) })
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		if runErr != nil {
			s.logger.Err(runErr).Msg("transport failed, shutting down")
		}
	}

	cancel()
	s.Shutdown()
	wg.Wait()

	close(errCh)
	for err := range errCh {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
