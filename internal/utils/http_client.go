// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/api/games")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose requests are resolved against
// baseURL, send and accept JSON, and time out after timeout (zero disables
// the timeout).
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
