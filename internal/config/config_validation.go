// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	dsn := strings.TrimSpace(cfg.Storage.DB.DSN)
	if dsn == "" {
		return ErrInvalidStorageConfigs
	}
	if _, err := DriverFromDSN(dsn); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}

// Supported database drivers, as registered with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DriverFromDSN picks the database/sql driver name for a connection string.
func DriverFromDSN(dsn string) (string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return DriverSQLite, nil
	default:
		return "", ErrUnsupportedDSN
	}
}

// SQLiteDSN strips the "sqlite://" scheme so the remainder can be handed to
// the go-sqlite3 driver. Other DSNs are returned unchanged.
func SQLiteDSN(dsn string) string {
	return strings.TrimPrefix(dsn, "sqlite://")
}
