// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenAudience == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer, audience and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
