// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data and writes it with statusCode and an
// "application/json" content type. HTML escaping is off so URLs such as
// a game's coverImageUrl keep their '&', '<' and '>' characters verbatim.
//
// The body is encoded before anything is written. If encoding fails the
// client gets a plain 500 and the returned error wraps the encoder error.
// Otherwise the number of body bytes written is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
