// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withMetrics records request count and latency labelled by the matched
// chi route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		mw := wrapResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.ObserveHTTPRequest(r.Method, route, mw.statusCode(), time.Since(start))
	})
}
