// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set are not overridden, and a missing file is
// not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading dotenv file %q: %w", path, err)
}
