// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every identity token: the standard
// registered claims (sub, iss, aud, iat, exp) plus the user's email.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID and Email are cached, parsed copies of the "sub" and "email" claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the value of the "email" claim.
	Email string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim and parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	if t.Token == nil {
		return 0, fmt.Errorf("error extracting UserID from token: no parsed token")
	}

	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
