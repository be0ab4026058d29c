// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vitorpontobarbosa/GameLibrary/internal/app"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/metrics"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		h.metrics.IncAuthAttempt("register", metrics.ResultRejected)
		writeError(w, r, ErrInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, user)
	if err != nil {
		h.metrics.IncAuthAttempt("register", authResult(err))
		writeError(w, r, err)
		return
	}

	if err := h.issueToken(w, r, registeredUser, app.MsgUserCreated); err != nil {
		h.metrics.IncAuthAttempt("register", metrics.ResultError)
		return
	}
	h.metrics.IncAuthAttempt("register", metrics.ResultSuccess)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		h.metrics.IncAuthAttempt("login", metrics.ResultRejected)
		writeError(w, r, ErrInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.metrics.IncAuthAttempt("login", authResult(err))
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	if err := h.issueToken(w, r, foundUser, app.MsgLoggedIn); err != nil {
		h.metrics.IncAuthAttempt("login", metrics.ResultError)
		return
	}
	h.metrics.IncAuthAttempt("login", metrics.ResultSuccess)
}

// issueToken answers with {message, token} and mirrors the token in the
// Authorization header. On error the error response is already written.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, message string) error {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return err
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Message: message, Token: token.SignedString}, http.StatusOK)
	return nil
}

func authResult(err error) string {
	if statusFromError(err) >= http.StatusInternalServerError {
		return metrics.ResultError
	}
	return metrics.ResultRejected
}
