// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorpontobarbosa/GameLibrary/models"
)

// catalogRouter mirrors the method layout of Handler.Init without services.
func catalogRouter() *chi.Mux {
	status := func(code int) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(code) }
	}

	router := chi.NewRouter()
	router.Get("/api/games", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("games"))
	})
	router.Post("/api/games", status(http.StatusCreated))
	router.Get("/api/games/me", status(http.StatusOK))
	router.Get("/api/games/{id}", status(http.StatusOK))
	router.Put("/api/games/{id}", status(http.StatusNoContent))
	router.Delete("/api/games/{id}", status(http.StatusNoContent))
	router.Post("/api/auth/login", status(http.StatusOK))
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := catalogRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"list", http.MethodGet, "/api/games", http.StatusOK},
		{"create", http.MethodPost, "/api/games", http.StatusCreated},
		{"get by id", http.MethodGet, "/api/games/5", http.StatusOK},
		{"update", http.MethodPut, "/api/games/5", http.StatusNoContent},
		{"delete", http.MethodDelete, "/api/games/5", http.StatusNoContent},
		{"login", http.MethodPost, "/api/auth/login", http.StatusOK},

		{"delete collection", http.MethodDelete, "/api/games", http.StatusNotFound},
		{"patch collection", http.MethodPatch, "/api/games", http.StatusNotFound},
		{"patch game", http.MethodPatch, "/api/games/5", http.StatusNotFound},
		{"post to game", http.MethodPost, "/api/games/5", http.StatusNotFound},
		{"delete own list", http.MethodDelete, "/api/games/me", http.StatusNotFound},
		{"get login", http.MethodGet, "/api/auth/login", http.StatusNotFound},
		{"options", http.MethodOptions, "/api/games", http.StatusNotFound},

		{"unknown path", http.MethodGet, "/api/studios", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_ErrorBody(t *testing.T) {
	for _, path := range []string{"/api/games", "/api/games/42"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			catalogRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, nil))

			require.Equal(t, http.StatusNotFound, rec.Code)
			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, ErrRouteNotFound.Error(), body.Error)
		})
	}
}

func TestCheckHTTPMethod_ServesResolvableRequest(t *testing.T) {
	router := catalogRouter()

	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/api/games", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "games", rec.Body.String())
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := catalogRouter()
	const n = 50
	codes := make(chan int, n)

	for i := range n {
		method := http.MethodGet
		if i%2 == 1 {
			method = http.MethodPatch
		}
		go func() {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(method, "/api/games/7", nil))
			codes <- rec.Code
		}()
	}

	ok, notFound := 0, 0
	for range n {
		switch <-codes {
		case http.StatusOK:
			ok++
		case http.StatusNotFound:
			notFound++
		}
	}
	assert.Equal(t, n/2, ok)
	assert.Equal(t, n/2, notFound)
}
