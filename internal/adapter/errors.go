// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidAddress is returned by NewHTTPClient for an unusable base URL.
	ErrInvalidAddress = errors.New("invalid server address")

	// ErrNoToken is returned before sending an authenticated request when no
	// token has been set.
	ErrNoToken = errors.New("no token, log in first")
)
