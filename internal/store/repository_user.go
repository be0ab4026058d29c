// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose stored email equals email.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - any other error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
