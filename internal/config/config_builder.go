// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// args are the command-line arguments parsed by withFlags.
	args []string
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

// merge folds all collected configs into one. Earlier sources take
// precedence; defaults fill the remaining zero fields.
func (b *configBuilder) merge() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range append(b.configs, defaults()) {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	config, err := b.merge()
	if err != nil {
		return nil, err
	}

	return config, config.validate()
}

func (b *configBuilder) withDotEnv() *configBuilder {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = defaultEnvFilePath
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
