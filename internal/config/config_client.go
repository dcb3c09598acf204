// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults for the CLI client.
const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientConfig holds the settings of the envios CLI client.
//
// Env variables use the ENVIOS_ prefix, e.g. ENVIOS_SERVER.
type ClientConfig struct {
	// ServerAddress is the base URL of the envios server.
	ServerAddress string `env:"SERVER"`

	// RequestTimeout bounds every request sent to the server.
	RequestTimeout time.Duration `env:"TIMEOUT"`

	// LogLevel is a zerolog level name for diagnostics printed to stderr.
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig merges fromFlags (highest priority), ENVIOS_* environment
// variables and defaults, then validates the result.
func GetClientConfig(fromFlags ClientConfig) (*ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var fromEnv ClientConfig
	if err := parseEnv(&fromEnv, "ENVIOS_"); err != nil {
		return nil, err
	}

	defaults := ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		LogLevel:       "warn",
	}

	cfg := fromFlags
	for _, layer := range []ClientConfig{fromEnv, defaults} {
		if err := mergo.Merge(&cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" {
		return errors.Join(ErrInvalidClientConfigs, errors.New("empty server address"))
	}
	if cfg.RequestTimeout <= 0 {
		return errors.Join(ErrInvalidClientConfigs, errors.New("request timeout must be positive"))
	}

	return nil
}
