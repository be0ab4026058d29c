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

// gameRepository is the database/sql implementation of [GameRepository]
// over the "games" table.
type gameRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewGameRepository(db *DB, logger *logger.Logger) GameRepository {
	logger.Debug().Msg("creating game repository")
	return &gameRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGame inserts game and returns it with ID, CreatedAt and UpdatedAt
// set. A missing owner yields [ErrOwnerNotFound].
func (r *gameRepository) CreateGame(ctx context.Context, game models.Game) (models.Game, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	game.CreatedAt, game.UpdatedAt = now, now

	query, args, err := buildInsertGameQuery(r.db.builder, game)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.CreateGame").Msg("error building query")
		return models.Game{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&game.ID); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Game{}, ErrOwnerNotFound
		}

		log.Err(err).Str("func", "*gameRepository.CreateGame").Msg("error inserting game")
		return models.Game{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return game, nil
}

func (r *gameRepository) GetGame(ctx context.Context, id int64) (models.Game, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGameByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.GetGame").Msg("error building query")
		return models.Game{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	game, err := scanGame(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Game{}, ErrGameNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.GetGame").Int64("game_id", id).Msg("error getting game")
		return models.Game{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return game, nil
}

func (r *gameRepository) ListGames(ctx context.Context) ([]models.Game, error) {
	return r.listGames(ctx, nil)
}

func (r *gameRepository) ListGamesByOwner(ctx context.Context, ownerID int64) ([]models.Game, error) {
	return r.listGames(ctx, &ownerID)
}

// listGames never returns a nil slice on success.
func (r *gameRepository) listGames(ctx context.Context, ownerID *int64) ([]models.Game, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGamesQuery(r.db.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.listGames").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.listGames").Msg("error querying games")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			log.Err(err).Str("func", "*gameRepository.listGames").Msg("error scanning game")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*gameRepository.listGames").Msg("error iterating games")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return games, nil
}

func (r *gameRepository) UpdateGame(ctx context.Context, id, ownerID int64, update models.GameUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateGameQuery(r.db.builder, id, ownerID, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.UpdateGame").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*gameRepository.UpdateGame", query, args)
}

func (r *gameRepository) DeleteGame(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteGameQuery(r.db.builder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.DeleteGame").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*gameRepository.DeleteGame", query, args)
}

// execAffectingOne runs a write scoped by id and owner and reports
// [ErrGameNotFound] when no row matched.
func (r *gameRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrGameNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (models.Game, error) {
	var (
		game      models.Game
		studio    sql.NullString
		price     sql.NullFloat64
		steamLink sql.NullString
	)

	err := row.Scan(
		&game.ID,
		&game.Name,
		&studio,
		&game.CoverImageURL,
		&price,
		&game.Description,
		&steamLink,
		&game.OwnerID,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return models.Game{}, err
	}

	if studio.Valid {
		game.Studio = &studio.String
	}
	if price.Valid {
		game.Price = &price.Float64
	}
	if steamLink.Valid {
		game.SteamLink = &steamLink.String
	}

	return game, nil
}
