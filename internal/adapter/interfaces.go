// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the game library HTTP API.
//
// The primary abstraction is [GameLibraryClient], which hides the REST
// transport from callers such as the command line client. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/vitorpontobarbosa/GameLibrary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/game_library_client_mock.go -package=mock

// GameLibraryClient talks to a game library server on behalf of one user.
type GameLibraryClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	ListGames(ctx context.Context) ([]models.Game, error)
	ListMyGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id int64) (models.Game, error)
	CreateGame(ctx context.Context, request models.CreateGameRequest) (models.Game, error)
	UpdateGame(ctx context.Context, id int64, update models.GameUpdate) error
	DeleteGame(ctx context.Context, id int64) error

	// ServerVersion returns the plain-text version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
