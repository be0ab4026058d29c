// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/vitorpontobarbosa/GameLibrary/internal/adapter"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// tokenEnv lets a shell session keep the token between invocations.
const tokenEnv = "GAME_LIBRARY_TOKEN"

func main() {
	fs := flag.NewFlagSet("client", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	addr := fs.String("addr", "", "server base URL (overrides ADAPTER_ADDRESS)")
	token := fs.String("token", os.Getenv(tokenEnv), "bearer token (defaults to $"+tokenEnv+")")
	verbose := fs.Bool("v", false, "log requests to stderr")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLoggerTo("game-library-client", os.Stderr)
	if !*verbose {
		logger.SetLevel("warn")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if *addr != "" {
		cfg.Adapter.HTTPAddress = *addr
	}

	client, err := adapter.NewHTTPGameLibraryClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create API client")
	}
	client.SetToken(*token)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = runCommand(ctx, client, fs.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}
