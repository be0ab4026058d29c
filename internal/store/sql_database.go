// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/migrations"
)

// DB is a database/sql pool together with the dialect specific pieces the
// repositories need: a query builder with the right placeholder format and a
// classifier for driver errors.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}
