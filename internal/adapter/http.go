// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

type httpGameLibraryClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPGameLibraryClient constructs the REST implementation of
// [GameLibraryClient]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http.
func NewHTTPGameLibraryClient(cfg config.Adapter, logger *logger.Logger) (GameLibraryClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpGameLibraryClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [GameLibraryClient].
func (h *httpGameLibraryClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [GameLibraryClient].
func (h *httpGameLibraryClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request carrying the stored bearer token.
func (h *httpGameLibraryClient) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// Register implements [GameLibraryClient]. POST /api/auth/register.
func (h *httpGameLibraryClient) Register(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", models.User{Email: email, Password: password})
}

// Login implements [GameLibraryClient]. POST /api/auth/login.
func (h *httpGameLibraryClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", models.LoginRequest{Email: email, Password: password})
}

// authenticate posts credentials and stores the issued token. The token is
// read from the JSON body, falling back to the Authorization header.
func (h *httpGameLibraryClient) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if result.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
		result.Token = token
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("path", path).Msg("token stored")

	return result, nil
}

// ListGames implements [GameLibraryClient]. GET /api/games.
func (h *httpGameLibraryClient) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&games).
		Get("/api/games")
	if err != nil {
		return nil, fmt.Errorf("list games request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return games, nil
}

// ListMyGames implements [GameLibraryClient]. GET /api/games/me.
func (h *httpGameLibraryClient) ListMyGames(ctx context.Context) ([]models.Game, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}

	var games []models.Game
	resp, err := req.SetResult(&games).Get("/api/games/me")
	if err != nil {
		return nil, fmt.Errorf("list my games request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return games, nil
}

// GetGame implements [GameLibraryClient]. GET /api/games/{id}.
func (h *httpGameLibraryClient) GetGame(ctx context.Context, id int64) (models.Game, error) {
	var game models.Game

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&game).
		SetPathParam("id", fmt.Sprint(id)).
		Get("/api/games/{id}")
	if err != nil {
		return models.Game{}, fmt.Errorf("get game request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Game{}, err
	}

	return game, nil
}

// CreateGame implements [GameLibraryClient]. POST /api/games.
func (h *httpGameLibraryClient) CreateGame(ctx context.Context, request models.CreateGameRequest) (models.Game, error) {
	req, err := h.authorized(ctx)
	if err != nil {
		return models.Game{}, err
	}

	var game models.Game
	resp, err := req.SetBody(request).SetResult(&game).Post("/api/games")
	if err != nil {
		return models.Game{}, fmt.Errorf("create game request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Game{}, err
	}

	return game, nil
}

// UpdateGame implements [GameLibraryClient]. PUT /api/games/{id}.
func (h *httpGameLibraryClient) UpdateGame(ctx context.Context, id int64, update models.GameUpdate) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetBody(update).
		SetPathParam("id", fmt.Sprint(id)).
		Put("/api/games/{id}")
	if err != nil {
		return fmt.Errorf("update game request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteGame implements [GameLibraryClient]. DELETE /api/games/{id}.
func (h *httpGameLibraryClient) DeleteGame(ctx context.Context, id int64) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", fmt.Sprint(id)).
		Delete("/api/games/{id}")
	if err != nil {
		return fmt.Errorf("delete game request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [GameLibraryClient]. GET /api/version.
func (h *httpGameLibraryClient) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
