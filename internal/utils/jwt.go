// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// parameter is missing.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): the single intended audience
//   - Subject   (sub): the user ID encoded as a string
//   - email          : the user's email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// issuer, audience, signKey and a positive tokenDuration are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("game-library", "game-library-users", 42, "a@b.c", time.Hour, "secret")
func GenerateJWTToken(issuer, audience string, userID int64, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || audience == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			// jti, distinct per issuance
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Email: email}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method restricted to HS256
//   - Signature verification using the provided sign key
//   - Issuer (iss) and audience (aud) checks
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "game-library", "game-library-users")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, tokenAudience string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to UserID: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Email: claims.Email}, nil
}

// ParseBearerToken returns the token part of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseUserIDFromJWT reads the subject of a token without verifying it.
// Only for display on the client side.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
