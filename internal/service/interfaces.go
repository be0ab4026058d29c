// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/vitorpontobarbosa/GameLibrary/models"
)

type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// GameService is the catalog workflow. Reads are public; every mutation is
// gated by the ownership policy for the acting user.
type GameService interface {
	List(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id int64) (models.Game, error)
	ListMine(ctx context.Context, userID int64) ([]models.Game, error)
	Create(ctx context.Context, request models.CreateGameRequest, userID int64) (models.Game, error)
	Update(ctx context.Context, id int64, update models.GameUpdate, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
