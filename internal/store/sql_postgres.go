// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
)

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newPostgresDB(conn, log), nil
}

func newPostgresDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return CheckViolation
	}

	return Unclassified
}
