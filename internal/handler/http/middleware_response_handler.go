// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture response metadata.
//
// It is used by middleware (withLogging, withMetrics) to observe the HTTP
// status code and the number of bytes written after the downstream handler
// has returned, without buffering the response.
//
// WriteHeader is forwarded to the underlying writer exactly once; subsequent
// calls are ignored, mirroring the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	wroteHeader bool

	// size is the running total of bytes successfully written to the response body.
	size int
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

// WriteHeader records the status code and forwards it to the underlying
// [http.ResponseWriter] exactly once.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b to the underlying [http.ResponseWriter] and accumulates
// the number of bytes written. A Write before WriteHeader implies
// [http.StatusOK].
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// statusCode is the status sent to the client; a handler that wrote
// nothing produced an implicit 200.
func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
