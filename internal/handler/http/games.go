// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/policy"
	"github.com/vitorpontobarbosa/GameLibrary/internal/service"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.services.GameService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, games, http.StatusOK)
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	id, err := gameIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	game, err := h.services.GameService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, game, http.StatusOK)
}

func (h *Handler) listMyGames(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	games, err := h.services.GameService.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, games, http.StatusOK)
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	// unknown fields such as ownerId are ignored
	var request models.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	game, err := h.services.GameService.Create(r.Context(), request, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	email, _ := utils.GetEmailFromContext(r.Context())
	log.Info().Int64("game_id", game.ID).Int64("owner_id", userID).Str("owner_email", email).Msg("game created")

	w.Header().Set("Location", fmt.Sprintf("/api/games/%d", game.ID))
	utils.WriteJSON(w, game, http.StatusCreated)
}

func (h *Handler) updateGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	id, err := gameIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.GameUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	if err := h.services.GameService.Update(r.Context(), id, update, userID); err != nil {
		h.countDenial("update", err)
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoIdentity)
		return
	}

	id, err := gameIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.GameService.Delete(r.Context(), id, userID); err != nil {
		h.countDenial("delete", err)
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) countDenial(operation string, err error) {
	switch {
	case errors.Is(err, policy.ErrForbidden):
		h.metrics.IncPolicyDenial(operation, "forbidden")
	case errors.Is(err, policy.ErrNotFound):
		h.metrics.IncPolicyDenial(operation, "not_found")
	}
}

func gameIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrInvalidGameID
	}
	return id, nil
}
