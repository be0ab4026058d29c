// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/games", h.listGames)
		r.Get("/api/games/{id}", h.getGame)

		r.Get("/api/version", h.getServerVersion)
		if h.metricsHandler != nil {
			r.Method("GET", "/metrics", h.metricsHandler)
		}
	})

	// routes acting on behalf of the authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/games/me", h.listMyGames)
		r.Post("/api/games", h.createGame)
		r.Put("/api/games/{id}", h.updateGame)
		r.Delete("/api/games/{id}", h.deleteGame)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
