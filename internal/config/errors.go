// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no server address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
