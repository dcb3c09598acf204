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
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
//
// An optional prefix is prepended to every variable name.
func parseEnv(cfg any, prefix ...string) error {
	opts := env.Options{}
	if len(prefix) > 0 {
		opts.Prefix = prefix[0]
	}

	err := env.ParseWithOptions(cfg, opts)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func loadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	return nil
}
