// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

const (
	usersTable = "users"
	gamesTable = "games"
)

var (
	userColumns = []string{"user_id", "email", "password_hash", "created_at"}

	gameColumns = []string{
		"id",
		"name",
		"studio",
		"cover_image_url",
		"price",
		"description",
		"steam_link",
		"owner_id",
		"created_at",
		"updated_at",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertGameQuery(b sq.StatementBuilderType, game models.Game) (string, []any, error) {
	return b.Insert(gamesTable).
		Columns(
			"name",
			"studio",
			"cover_image_url",
			"price",
			"description",
			"steam_link",
			"owner_id",
			"created_at",
			"updated_at",
		).
		Values(
			game.Name,
			game.Studio,
			game.CoverImageURL,
			game.Price,
			game.Description,
			game.SteamLink,
			game.OwnerID,
			game.CreatedAt,
			game.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectGameByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(gameColumns...).
		From(gamesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectGamesQuery lists games ordered by id. A nil ownerID lists the
// whole catalog.
func buildSelectGamesQuery(b sq.StatementBuilderType, ownerID *int64) (string, []any, error) {
	query := b.Select(gameColumns...).From(gamesTable)
	if ownerID != nil {
		query = query.Where(sq.Eq{"owner_id": *ownerID})
	}

	return query.OrderBy("id").ToSql()
}

// buildUpdateGameQuery sets only the present fields of update and bumps
// updated_at. The row must match both id and owner.
func buildUpdateGameQuery(b sq.StatementBuilderType, id, ownerID int64, update models.GameUpdate, now time.Time) (string, []any, error) {
	values := make(map[string]any, 7)

	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Studio != nil {
		values["studio"] = *update.Studio
	}
	if update.CoverImageURL != nil {
		values["cover_image_url"] = *update.CoverImageURL
	}
	if update.Price != nil {
		values["price"] = *update.Price
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.SteamLink != nil {
		values["steam_link"] = *update.SteamLink
	}
	values["updated_at"] = now

	return b.Update(gamesTable).
		SetMap(values).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

func buildDeleteGameQuery(b sq.StatementBuilderType, id, ownerID int64) (string, []any, error) {
	return b.Delete(gamesTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}
