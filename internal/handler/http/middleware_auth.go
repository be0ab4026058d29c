// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/metrics"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID and email in the request context with
// [utils.WithIdentity] before delegating to the next handler.
//
// Requests without a header, with a malformed header or with a token that
// fails validation are rejected with HTTP 401 and never reach the handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.metrics.IncAuthAttempt("token", metrics.ResultRejected)
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.metrics.IncAuthAttempt("token", metrics.ResultRejected)
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			h.metrics.IncAuthAttempt("token", metrics.ResultRejected)
			writeError(w, r, err)
			return
		}

		h.metrics.IncAuthAttempt("token", metrics.ResultSuccess)
		ctx = utils.WithIdentity(ctx, token.UserID, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
