// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

func newTestClient(t *testing.T, serverURL string) *httpGameLibraryClient {
	t.Helper()

	c, err := NewHTTPGameLibraryClient(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpGameLibraryClient)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://games.example.com/ ", want: "https://games.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPGameLibraryClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPGameLibraryClient(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestRegister_StoresTokenFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "secret1", body["password"])

		writeJSON(w, http.StatusOK, models.AuthResponse{Message: "user created successfully", Token: "tok-1"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Register(context.Background(), "alice@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "user created successfully", got.Message)
	assert.Equal(t, "tok-1", c.Token())
}

func TestLogin_FallsBackToAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(w, http.StatusOK, models.AuthResponse{Message: "logged in successfully"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.Login(context.Background(), "alice@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "header-token", got.Token)
	assert.Equal(t, "header-token", c.Token())
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    models.ErrorResponse
		wantErr error
		wantMsg string
	}{
		{
			name:    "bad credentials",
			status:  http.StatusUnauthorized,
			body:    models.ErrorResponse{Error: "invalid email or password"},
			wantErr: ErrUnauthorized,
			wantMsg: "invalid email or password",
		},
		{
			name:    "validation",
			status:  http.StatusBadRequest,
			body:    models.ErrorResponse{Error: "validation failed", Fields: map[string]string{"password": "is required", "email": "must be a valid email"}},
			wantErr: ErrBadRequest,
			wantMsg: "validation failed (email: must be a valid email, password: is required)",
		},
		{
			name:    "internal",
			status:  http.StatusInternalServerError,
			body:    models.ErrorResponse{Error: "Internal Server Error"},
			wantErr: ErrInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.Login(context.Background(), "alice@example.com", "x")

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Empty(t, c.Token())
		})
	}
}

// ── games ───────────────────────────────────────────────────────────────────

func TestListGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/games", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.Game{{ID: 1, Name: "Celeste"}, {ID: 2, Name: "Hades"}})
	}))
	defer srv.Close()

	games, err := newTestClient(t, srv.URL).ListGames(context.Background())

	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Hades", games[1].Name)
}

func TestAuthenticatedCallsRequireToken(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")
	ctx := context.Background()

	_, err := c.ListMyGames(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = c.CreateGame(ctx, models.CreateGameRequest{})
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, c.UpdateGame(ctx, 1, models.GameUpdate{}), ErrNoToken)
	assert.ErrorIs(t, c.DeleteGame(ctx, 1), ErrNoToken)
}

func TestListMyGames_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/games/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.Game{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken(" tok ")

	games, err := c.ListMyGames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGetGame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/games/7" {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
			return
		}
		writeJSON(w, http.StatusOK, models.Game{ID: 7, Name: "Celeste"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	game, err := c.GetGame(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Celeste", game.Name)

	_, err = c.GetGame(context.Background(), 8)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "game not found")
}

func TestCreateGame(t *testing.T) {
	request := models.CreateGameRequest{
		Name:          "Celeste",
		CoverImageURL: "https://example.com/celeste.png",
		Description:   "Climb the mountain",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var got models.CreateGameRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, request, got)

		w.Header().Set("Location", "/api/games/3")
		writeJSON(w, http.StatusCreated, request.ToGame(1))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("tok")

	game, err := c.CreateGame(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, int64(1), game.OwnerID)
	assert.Equal(t, "Celeste", game.Name)
}

func TestUpdateAndDelete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"no content", http.StatusNoContent, nil},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"expired token", http.StatusUnauthorized, ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var methods []string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				methods = append(methods, r.Method)
				assert.Equal(t, "/api/games/5", r.URL.Path)
				if tt.status == http.StatusNoContent {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(w, tt.status, models.ErrorResponse{Error: http.StatusText(tt.status)})
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			c.SetToken("tok")
			name := "Celeste Classic"

			errUpdate := c.UpdateGame(context.Background(), 5, models.GameUpdate{Name: &name})
			errDelete := c.DeleteGame(context.Background(), 5)

			if tt.wantErr == nil {
				assert.NoError(t, errUpdate)
				assert.NoError(t, errDelete)
			} else {
				assert.ErrorIs(t, errUpdate, tt.wantErr)
				assert.ErrorIs(t, errDelete, tt.wantErr)
			}
			assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
		})
	}
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.4.0"))
	}))
	defer srv.Close()

	v, err := newTestClient(t, srv.URL).ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestMapHTTPError_PlainTextAndUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).ListGames(context.Background())
	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}
