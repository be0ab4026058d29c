// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("unexpected base url %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("unexpected timeout %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_SendsJSONHeaders(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("unexpected status %d", resp.StatusCode())
	}
	if accept != "application/json" {
		t.Errorf("unexpected Accept header %q", accept)
	}
}
