// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/vitorpontobarbosa/GameLibrary/internal/policy"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrHashingPassword         = errors.New("error hashing password")

	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidGameID = errors.New("invalid game id")

	// ErrForbidden is returned when the acting user does not own the game.
	ErrForbidden = policy.ErrForbidden

	// ErrNotAuthorized matches every denial of the ownership policy,
	// whether the game is missing or owned by someone else.
	ErrNotAuthorized = policy.ErrNotAuthorized

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
