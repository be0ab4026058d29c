// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/vitorpontobarbosa/GameLibrary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by normalised email.
	// An unknown email yields [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// GameRepository persists games. Writes are always scoped by owner.
type GameRepository interface {
	CreateGame(ctx context.Context, game models.Game) (models.Game, error)
	GetGame(ctx context.Context, id int64) (models.Game, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	ListGamesByOwner(ctx context.Context, ownerID int64) ([]models.Game, error)

	// UpdateGame applies the present fields of update to the game id owned by
	// ownerID. No matching row yields [ErrGameNotFound].
	UpdateGame(ctx context.Context, id, ownerID int64, update models.GameUpdate) error

	// DeleteGame removes the game id owned by ownerID. No matching row yields
	// [ErrGameNotFound].
	DeleteGame(ctx context.Context, id, ownerID int64) error
}
