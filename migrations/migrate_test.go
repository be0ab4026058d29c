// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: goose's first statement fails
	_ = mock

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got: %v", err)
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "mysql"); !errors.Is(err, ErrUnsupportedDialect) {
		t.Fatalf("expected ErrUnsupportedDialect, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// second run is a no-op
	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("Migrate (again): %v", err)
	}

	for _, table := range []string{"users", "games"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	if _, err := db.Exec(`INSERT INTO users (email, password_hash) VALUES ('a@b.c', 'h')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO users (email, password_hash) VALUES ('a@b.c', 'h')`); err == nil {
		t.Fatal("expected unique constraint on email")
	}
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := embedMigrations.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		if len(entries) != 2 {
			t.Errorf("expected 2 migrations in %s, got %d", dir, len(entries))
		}
	}
}
