// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	myGRPC "github.com/vitorpontobarbosa/GameLibrary/internal/handler/grpc"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		logger.Err(err).Str("func", "newGRPCServer").Str("address", cfg.GRPCAddress).Msg("failed to listen")
		return nil, fmt.Errorf("%w on %s: %w", errListening, cfg.GRPCAddress, err)
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(unaryLogging(logger)))
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) address() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.address()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// markNotServing flips the health status before the listeners close so
// probes stop routing traffic here first.
func (g *grpcServer) markNotServing() {
	g.handler.Shutdown()
}

func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}

// unaryLogging writes one log line per unary call, mirroring the HTTP
// access log.
func unaryLogging(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		log.Debug().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}
