// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
// Fields is only populated for validation failures and maps JSON field names
// to human-readable messages.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
