// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// violates the unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrGameNotFound is returned when a read, update or delete targets a game
	// that does not exist (for writes: that does not exist for the given owner).
	ErrGameNotFound = errors.New("game was not found")

	// ErrOwnerNotFound is returned when a game references a user that does not
	// exist.
	ErrOwnerNotFound = errors.New("game owner does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
