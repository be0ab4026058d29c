// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler. chi calls it when the request path matches a
// route (parameters included, so /api/games/5 matches /api/games/{id}) but
// no handler exists for the method.
//
// Such requests get the same 404 JSON error as an unknown path instead of
// chi's 405, so the set of methods a resource supports is not advertised.
//
// When router does resolve the method for the path, which happens if the
// handler is mounted on a different mux than the one that owns the route,
// the request is served normally.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeError(w, r, ErrRouteNotFound)
	}
}
