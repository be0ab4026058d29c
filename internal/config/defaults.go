// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer   = "game-library"
	defaultTokenAudience = "game-library-users"
	defaultTokenDuration = time.Hour

	defaultPasswordHashTime    uint32 = 1
	defaultPasswordHashMemory  uint32 = 64 * 1024
	defaultPasswordHashThreads uint8  = 4

	defaultRequestTimeout = 30 * time.Second
	defaultEnvFilePath    = ".env"

	defaultAdapterAddress = "http://localhost:8080"
	defaultAdapterTimeout = 15 * time.Second
)

// defaults returns the config merged last, filling every field left empty
// by the other sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         defaultTokenIssuer,
			TokenAudience:       defaultTokenAudience,
			TokenDuration:       defaultTokenDuration,
			PasswordHashTime:    defaultPasswordHashTime,
			PasswordHashMemory:  defaultPasswordHashMemory,
			PasswordHashThreads: defaultPasswordHashThreads,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}
