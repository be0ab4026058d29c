// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/service"
	"github.com/vitorpontobarbosa/GameLibrary/internal/store"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
	"github.com/vitorpontobarbosa/GameLibrary/internal/validators"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// errorStatusMap must not hold two targets with different statuses that one
// error can match at once; iteration order is random.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	validators.ErrValidation:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidGameID:       http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	ErrNoIdentity:                      http.StatusUnauthorized,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	// the game service wraps store.ErrGameNotFound in this one
	service.ErrGameNotFound: http.StatusNotFound,
	ErrRouteNotFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	status, _ := resolveError(err)
	return status
}

// resolveError returns the status for err together with the sentinel that
// matched, or (500, nil) for unknown errors.
func resolveError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// errorResponse builds the client facing body for err. Internal errors are
// reported with the generic status text only.
func errorResponse(err error) (int, models.ErrorResponse) {
	if fields := validators.FieldsOf(err); fields != nil {
		return http.StatusBadRequest, models.ErrorResponse{
			Error:  validators.ErrValidation.Error(),
			Fields: fields,
		}
	}

	status, target := resolveError(err)
	if status == http.StatusInternalServerError || target == nil {
		return http.StatusInternalServerError, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}
	}

	return status, models.ErrorResponse{Error: target.Error()}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
