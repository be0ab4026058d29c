// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/vitorpontobarbosa/GameLibrary/internal/logger"

// Storages groups every repository backed by one database.
type Storages struct {
	UserRepository UserRepository
	GameRepository GameRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		GameRepository: NewGameRepository(db, logger),
	}
}
