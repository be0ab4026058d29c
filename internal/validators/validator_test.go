// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

func ptr[T any](v T) *T { return &v }

func validCreateGame() models.CreateGameRequest {
	return models.CreateGameRequest{
		Name:          "Hades",
		Studio:        ptr("Supergiant"),
		CoverImageURL: "https://example.com/hades.png",
		Price:         ptr(24.99),
		Description:   "Defy the god of the dead.",
		SteamLink:     ptr("https://store.steampowered.com/app/1145360"),
	}
}

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Game{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.User)(nil)), ErrUnsupportedType)
}

func TestValidate_User(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		user   models.User
		fields map[string]string
	}{
		{
			name: "valid",
			user: models.User{Email: "a@b.co", Password: "secret"},
		},
		{
			name:   "empty email",
			user:   models.User{Password: "secret"},
			fields: map[string]string{"email": "is required"},
		},
		{
			name:   "malformed email",
			user:   models.User{Email: "not-an-email", Password: "secret"},
			fields: map[string]string{"email": "must be a valid email"},
		},
		{
			name:   "short password",
			user:   models.User{Email: "a@b.co", Password: "12345"},
			fields: map[string]string{"password": "must be at least 6 characters long"},
		},
		{
			name: "both invalid",
			user: models.User{},
			fields: map[string]string{
				"email":    "is required",
				"password": "is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.user)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.fields, FieldsOf(err))
		})
	}
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	require.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "x", Password: "1"}))

	err := v.Validate(context.Background(), models.LoginRequest{Email: "   "})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{
		"email":    "must not be blank",
		"password": "is required",
	}, FieldsOf(err))
}

func TestValidate_CreateGameRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validCreateGame()))

	tests := []struct {
		name   string
		mutate func(r *models.CreateGameRequest)
		field  string
		msg    string
	}{
		{"short name", func(r *models.CreateGameRequest) { r.Name = "ab" }, "name", "must be at least 3 characters long"},
		{"blank name", func(r *models.CreateGameRequest) { r.Name = "     " }, "name", "must not be blank"},
		{"long name", func(r *models.CreateGameRequest) { r.Name = strings.Repeat("n", 101) }, "name", "must be at most 100 characters long"},
		{"long studio", func(r *models.CreateGameRequest) { r.Studio = ptr(strings.Repeat("s", 101)) }, "studio", "must be at most 100 characters long"},
		{"missing cover", func(r *models.CreateGameRequest) { r.CoverImageURL = "" }, "coverImageUrl", "is required"},
		{"blank cover", func(r *models.CreateGameRequest) { r.CoverImageURL = "   " }, "coverImageUrl", "must not be blank"},
		{"bad cover", func(r *models.CreateGameRequest) { r.CoverImageURL = "not a url" }, "coverImageUrl", "must be a valid URL"},
		{"negative price", func(r *models.CreateGameRequest) { r.Price = ptr(-1.0) }, "price", "must be greater than or equal to 0"},
		{"price too high", func(r *models.CreateGameRequest) { r.Price = ptr(1000.01) }, "price", "must be less than or equal to 1000"},
		{"short description", func(r *models.CreateGameRequest) { r.Description = "too short" }, "description", "must be at least 10 characters long"},
		{"long description", func(r *models.CreateGameRequest) { r.Description = strings.Repeat("d", 501) }, "description", "must be at most 500 characters long"},
		{"bad steam link", func(r *models.CreateGameRequest) { r.SteamLink = ptr("steam") }, "steamLink", "must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateGame()
			tt.mutate(&req)

			err := v.Validate(ctx, &req)
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, map[string]string{tt.field: tt.msg}, FieldsOf(err))
		})
	}
}

func TestValidate_CreateGameRequest_Boundaries(t *testing.T) {
	v := NewRequestValidator()

	req := validCreateGame()
	req.Name = "abc"
	req.Description = strings.Repeat("d", 10)
	req.Price = ptr(0.0)
	req.Studio = nil
	req.SteamLink = nil
	require.NoError(t, v.Validate(context.Background(), req))

	req.Name = strings.Repeat("n", 100)
	req.Description = strings.Repeat("d", 500)
	req.Price = ptr(1000.0)
	require.NoError(t, v.Validate(context.Background(), req))
}

func TestValidate_GameUpdate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.GameUpdate{}))
	require.NoError(t, v.Validate(ctx, models.GameUpdate{Price: ptr(0.0), Studio: ptr("")}))

	err := v.Validate(ctx, models.GameUpdate{
		Name:        ptr("x"),
		Description: ptr(""),
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{
		"name":        "must be at least 3 characters long",
		"description": "must not be blank",
	}, FieldsOf(err))
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.User{Email: "bad"}, FieldPassword)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"password": "is required"}, FieldsOf(err))

	assert.NoError(t, v.Validate(context.Background(), models.User{Email: "bad", Password: "secret"}, FieldPassword))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"password": "is required",
		"email":    "must be a valid email",
	}}

	assert.Equal(t, "validation failed: email must be a valid email; password is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Nil(t, FieldsOf(errors.New("other")))
}
