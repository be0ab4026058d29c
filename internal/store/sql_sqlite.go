// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
)

// NewConnectSQLite opens (creating if needed) the SQLite database at cfg.DSN.
// Foreign keys are enabled on the connection and the pool is limited to a
// single connection since SQLite allows one writer at a time.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newSQLiteDB(conn, log), nil
}

func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             config.DriverSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

// sqliteDSN turns on foreign key enforcement unless the DSN already
// configures it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
		return CheckViolation
	}

	return Unclassified
}
