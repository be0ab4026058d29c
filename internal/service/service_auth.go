// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/crypto"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/store"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
	"github.com/vitorpontobarbosa/GameLibrary/internal/validators"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// dummyPassword is hashed once and verified against when a login names an
// unknown email, so both failure paths cost one argon2id derivation.
const dummyPassword = "game-library-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer and tokenAudience are the "iss" and "aud" claims embedded in
	// every issued JWT. Tokens carrying other values are rejected.
	tokenIssuer   string
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	dummyHashOnce sync.Once
	dummyHash     string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenAudience:  cfg.TokenAudience,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The email is normalised before validation and storage. The password must be
// at least 6 characters long and is stored only as an argon2id hash.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - an error matching ErrInvalidDataProvided and carrying a
//     *validators.ValidationError when the input is invalid;
//   - an error matching store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = models.NormalizeEmail(user.Email)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
// The password check runs in either case so the two are indistinguishable
// by response time.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = models.NormalizeEmail(request.Email)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.verifyDummy(request.Password)
		log.Info().Str("func", "*authService.Login").Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(request.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", foundUser.UserID).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Info().Str("func", "*authService.Login").Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, expired, wrong issuer or audience,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) verifyDummy(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Err(err).Str("func", "*authService.verifyDummy").Msg("error hashing dummy password")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash == "" {
		return
	}

	_, _ = a.hasher.Verify(password, a.dummyHash)
}
