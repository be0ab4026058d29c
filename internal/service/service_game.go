// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/policy"
	"github.com/vitorpontobarbosa/GameLibrary/internal/store"
	"github.com/vitorpontobarbosa/GameLibrary/internal/validators"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// gameService implements [GameService] on top of a game repository. Every
// mutation passes through the ownership policy before reaching the store.
type gameService struct {
	gameRepository store.GameRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewGameService constructs a GameService backed by gameRepository.
// validator checks create and update payloads.
func NewGameService(gameRepository store.GameRepository, validator validators.Validator, logger *logger.Logger) GameService {
	return &gameService{
		gameRepository: gameRepository,
		validator:      validator,
		logger:         logger,
	}
}

// List returns every game in the catalog regardless of owner.
func (s *gameService) List(ctx context.Context) ([]models.Game, error) {
	return s.gameRepository.ListGames(ctx)
}

// GetByID returns game id to any caller. Returns ErrInvalidGameID for a
// non-positive id and an error matching ErrGameNotFound for a missing game.
func (s *gameService) GetByID(ctx context.Context, id int64) (models.Game, error) {
	if id <= 0 {
		return models.Game{}, ErrInvalidGameID
	}

	game, err := s.gameRepository.GetGame(ctx, id)
	if errors.Is(err, store.ErrGameNotFound) {
		return models.Game{}, fmt.Errorf("%w: %w", ErrGameNotFound, err)
	}

	return game, err
}

// ListMine returns the games owned by userID, or an empty slice.
func (s *gameService) ListMine(ctx context.Context, userID int64) ([]models.Game, error) {
	games, err := s.gameRepository.ListGamesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []models.Game{}
	}

	return games, nil
}

// Create validates request and stores it as a game owned by userID.
func (s *gameService) Create(ctx context.Context, request models.CreateGameRequest, userID int64) (models.Game, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "*gameService.Create").Msg("invalid game data provided")
		return models.Game{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	game, err := s.gameRepository.CreateGame(ctx, request.ToGame(userID))
	if err != nil {
		log.Err(err).Str("func", "*gameService.Create").Int64("user_id", userID).Msg("game creation ended with error")
		return models.Game{}, fmt.Errorf("game creation ended with error: %w", err)
	}

	return game, nil
}

// Update applies the present fields of update to game id. Only the owner may
// update; ownership is checked before the fields are validated. An update
// without fields succeeds without touching the store.
func (s *gameService) Update(ctx context.Context, id int64, update models.GameUpdate, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.authorize(ctx, policy.ActionUpdate, id, userID); err != nil {
		return err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Str("func", "*gameService.Update").Int64("game_id", id).Msg("invalid game update provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.IsEmpty() {
		return nil
	}

	err := s.gameRepository.UpdateGame(ctx, id, userID, update)
	if errors.Is(err, store.ErrGameNotFound) {
		// removed between the ownership check and the write
		return fmt.Errorf("%w: %w", ErrGameNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*gameService.Update").Int64("game_id", id).Msg("game update ended with error")
		return fmt.Errorf("game update ended with error: %w", err)
	}

	return nil
}

// Delete removes game id. Only the owner may delete it; the denial rules are
// those of Update.
func (s *gameService) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.authorize(ctx, policy.ActionDelete, id, userID); err != nil {
		return err
	}

	err := s.gameRepository.DeleteGame(ctx, id, userID)
	if errors.Is(err, store.ErrGameNotFound) {
		return fmt.Errorf("%w: %w", ErrGameNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*gameService.Delete").Int64("game_id", id).Msg("game deletion ended with error")
		return fmt.Errorf("game deletion ended with error: %w", err)
	}

	return nil
}

// authorize loads game id and asks the policy whether userID may perform
// action on it. A missing game yields an error matching ErrGameNotFound; a
// game of another owner yields ErrForbidden. Both match ErrNotAuthorized.
func (s *gameService) authorize(ctx context.Context, action policy.Action, id, userID int64) error {
	if id <= 0 {
		return ErrInvalidGameID
	}

	var resource policy.Resource

	game, err := s.gameRepository.GetGame(ctx, id)
	switch {
	case errors.Is(err, store.ErrGameNotFound):
	case err != nil:
		return err
	default:
		resource = policy.Resource{Exists: true, OwnerID: game.OwnerID}
	}

	decision := policy.Authorize(action, resource, userID)
	if decision == policy.Allow {
		return nil
	}

	logger.FromContext(ctx).Info().
		Str("func", "*gameService.authorize").
		Stringer("action", action).
		Stringer("decision", decision).
		Int64("game_id", id).
		Int64("user_id", userID).
		Msg("access denied")

	if decision == policy.DenyNotFound {
		return fmt.Errorf("%w: %w", ErrGameNotFound, decision.Err())
	}

	return decision.Err()
}
