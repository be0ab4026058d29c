// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus instruments of the game library
// server and the handler exposing them.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "game_library"

// Auth attempt outcomes used as the "result" label.
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// AuthAttemptsTotal counts register, login and token checks by result.
	AuthAttemptsTotal *prometheus.CounterVec

	// PolicyDenialsTotal counts mutations refused by the ownership policy.
	PolicyDenialsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics in registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_attempts_total",
				Help:      "Total number of authentication attempts",
			},
			[]string{"operation", "result"},
		),
		PolicyDenialsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "policy_denials_total",
				Help:      "Total number of game mutations denied by the ownership policy",
			},
			[]string{"operation", "reason"},
		),
	}

	registerer.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthAttemptsTotal,
		m.PolicyDenialsTotal,
	)

	return m
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// RegisterDBStats exposes the connection pool statistics of db.
func RegisterDBStats(registerer prometheus.Registerer, db *sql.DB, dbName string) error {
	return registerer.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the metrics of gatherer in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request. route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncAuthAttempt(operation, result string) {
	if m == nil {
		return
	}

	m.AuthAttemptsTotal.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) IncPolicyDenial(operation, reason string) {
	if m == nil {
		return
	}

	m.PolicyDenialsTotal.WithLabelValues(operation, reason).Inc()
}
