// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenAudience       string   `json:"token_audience"`
		TokenDuration       Duration `json:"token_duration"`
		PasswordHashTime    uint32   `json:"password_hash_time"`
		PasswordHashMemory  uint32   `json:"password_hash_memory"`
		PasswordHashThreads uint8    `json:"password_hash_threads"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenAudience:       jsonCfg.App.TokenAudience,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashTime:    jsonCfg.App.PasswordHashTime,
			PasswordHashMemory:  jsonCfg.App.PasswordHashMemory,
			PasswordHashThreads: jsonCfg.App.PasswordHashThreads,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
