// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// EmailCtxKey is the key used to store the authenticated user's email in
// the context, next to [UserIDCtxKey].
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the authenticated user's email from the
// context.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}

// WithIdentity returns a copy of ctx carrying the user ID and email of an
// authenticated caller.
func WithIdentity(ctx context.Context, userID int64, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, EmailCtxKey, email)
}
