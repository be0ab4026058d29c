// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers and the authentication middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoIdentity is returned when a protected handler runs without an
	// authenticated user in the request context.
	ErrNoIdentity = errors.New("no authenticated user in request")

	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound answers a known path requested with a method it does
	// not support.
	ErrRouteNotFound = errors.New("route not found")
)
