// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorpontobarbosa/GameLibrary/internal/config"
	"github.com/vitorpontobarbosa/GameLibrary/internal/logger"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{
			name:     "both addresses",
			cfg:      config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "only http",
			cfg:      config.Server{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:     "only grpc",
			cfg:      config.Server{GRPCAddress: ":9090"},
			wantGRPC: true,
		},
		{
			name:    "no addresses",
			cfg:     config.Server{},
			wantErr: errNoTransports,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// services, db and metrics are only stored at construction time.
			h, err := NewHandlers(nil, nil, nil, nil, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}

	h1, err := NewHandlers(nil, nil, nil, nil, cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(nil, nil, nil, nil, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
