// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of every supported database and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by [Migrate]. They match the database/sql driver names.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies all pending migrations of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, err := dirFor(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	migrationsFS, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dirFor(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}
