// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
)

// withLogging writes one access log line per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := wrapResponseWriter(w)

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.statusCode()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
