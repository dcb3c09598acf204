// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty or unrecognised DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a listen address without a port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates invalid CLI client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrUnsupportedDSN is returned for connection strings whose scheme maps
	// to no supported driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
