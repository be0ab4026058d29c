// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "games.db"),
	}

	db, err := NewConnect(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	assert.Equal(t, config.DriverSQLite, db.Driver())

	return NewStorages(db, logger.Nop())
}

func TestSQLite_UserAndGameLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)

	alice, err := s.UserRepository.CreateUser(ctx, models.User{Email: "alice@example.com", PasswordHash: "h1"})
	require.NoError(t, err)
	bob, err := s.UserRepository.CreateUser(ctx, models.User{Email: "bob@example.com", PasswordHash: "h2"})
	require.NoError(t, err)
	assert.NotEqual(t, alice.UserID, bob.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "alice@example.com", PasswordHash: "h3"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := s.UserRepository.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, found.UserID)
	assert.Equal(t, "h1", found.PasswordHash)

	_, err = s.UserRepository.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	game, err := s.GameRepository.CreateGame(ctx, models.Game{
		Name:          "Hollow Knight",
		CoverImageURL: "https://example.com/hk.png",
		Description:   "Explore Hallownest",
		Price:         ptr(14.99),
		OwnerID:       alice.UserID,
	})
	require.NoError(t, err)
	assert.NotZero(t, game.ID)

	_, err = s.GameRepository.CreateGame(ctx, models.Game{
		Name:          "Orphan",
		CoverImageURL: "https://example.com/o.png",
		Description:   "Nobody owns this",
		OwnerID:       9999,
	})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	got, err := s.GameRepository.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hollow Knight", got.Name)
	assert.Nil(t, got.Studio)
	require.NotNil(t, got.Price)
	assert.InDelta(t, 14.99, *got.Price, 1e-9)

	// a non-owner write matches no row
	err = s.GameRepository.UpdateGame(ctx, game.ID, bob.UserID, models.GameUpdate{Name: ptr("Stolen")})
	assert.ErrorIs(t, err, ErrGameNotFound)
	err = s.GameRepository.DeleteGame(ctx, game.ID, bob.UserID)
	assert.ErrorIs(t, err, ErrGameNotFound)

	err = s.GameRepository.UpdateGame(ctx, game.ID, alice.UserID, models.GameUpdate{Studio: ptr("Team Cherry")})
	require.NoError(t, err)

	got, err = s.GameRepository.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hollow Knight", got.Name)
	require.NotNil(t, got.Studio)
	assert.Equal(t, "Team Cherry", *got.Studio)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	all, err := s.GameRepository.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	mine, err := s.GameRepository.ListGamesByOwner(ctx, bob.UserID)
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)

	require.NoError(t, s.GameRepository.DeleteGame(ctx, game.ID, alice.UserID))
	_, err = s.GameRepository.GetGame(ctx, game.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)
}
