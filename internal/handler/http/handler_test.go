// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
	"github.com/vitorpontobarbosa/GameLibrary/internal/metrics"
	"github.com/vitorpontobarbosa/GameLibrary/internal/service"
	"github.com/vitorpontobarbosa/GameLibrary/internal/utils"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	return m.registerFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockGameService implements service.GameService. Unset functions panic so
// an unexpected call fails the test loudly.
type mockGameService struct {
	listFn     func(ctx context.Context) ([]models.Game, error)
	getByIDFn  func(ctx context.Context, id int64) (models.Game, error)
	listMineFn func(ctx context.Context, userID int64) ([]models.Game, error)
	createFn   func(ctx context.Context, request models.CreateGameRequest, userID int64) (models.Game, error)
	updateFn   func(ctx context.Context, id int64, update models.GameUpdate, userID int64) error
	deleteFn   func(ctx context.Context, id, userID int64) error
}

func (m *mockGameService) List(ctx context.Context) ([]models.Game, error) {
	return m.listFn(ctx)
}

func (m *mockGameService) GetByID(ctx context.Context, id int64) (models.Game, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockGameService) ListMine(ctx context.Context, userID int64) ([]models.Game, error) {
	return m.listMineFn(ctx, userID)
}

func (m *mockGameService) Create(ctx context.Context, request models.CreateGameRequest, userID int64) (models.Game, error) {
	return m.createFn(ctx, request, userID)
}

func (m *mockGameService) Update(ctx context.Context, id int64, update models.GameUpdate, userID int64) error {
	return m.updateFn(ctx, id, update, userID)
}

func (m *mockGameService) Delete(ctx context.Context, id, userID int64) error {
	return m.deleteFn(ctx, id, userID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, nil, nil, config.Server{}, logger.Nop())
}

// withUser returns r carrying an authenticated identity, as the auth
// middleware would leave it.
func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithIdentity(r.Context(), userID, "user@example.com"))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	log := logger.Nop()

	h := NewHandler(svc, m, http.NotFoundHandler(), config.Server{RequestTimeout: 5}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, m, h.metrics)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.metricsHandler)
	assert.NotNil(t, h.traceIDs)
	assert.EqualValues(t, 5, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := newTestHandler(&service.Services{})
	h2 := newTestHandler(&service.Services{})

	assert.NotSame(t, h1, h2)
}
