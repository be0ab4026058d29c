// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/crypto"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/store"
	"github.com/vitorpontobarbosa/GameLibrary/internal/validators"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

type Services struct {
	AuthService    AuthService
	GameService    GameService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()
	hasher := crypto.NewPasswordHasher(crypto.Params{
		Time:    cfg.App.PasswordHashTime,
		Memory:  cfg.App.PasswordHashMemory,
		Threads: cfg.App.PasswordHashThreads,
	})

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, validator, cfg.App, logger),
		GameService:    NewGameService(storages.GameRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
