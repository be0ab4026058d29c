// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user assigned by the
	// store on creation. It is immutable.
	UserID int64 `json:"-"`

	// Email is the unique login identifier. It is stored normalised
	// (trimmed, lower case) so uniqueness is case-insensitive.
	Email string `json:"email" validate:"required,email,max=254"`

	// Password is the plain-text password received from the client.
	// It only lives for the duration of a request and is never persisted.
	Password string `json:"password" validate:"required,min=6,max=128"`

	// PasswordHash is the argon2id PHC string stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// NormalizeEmail returns the canonical form of an email address used for
// storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LoginRequest is the client payload of the login endpoint. Only presence
// is checked here; length rules apply at registration.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}
