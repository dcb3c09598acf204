// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-envios/internal/config"
	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/migrations"
)

// DB is an open database/sql handle together with everything that depends
// on its dialect: the query builder placeholder format, the goose dialect and
// the driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens a connection for cfg.DSN, choosing the driver from its scheme.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, err := config.DriverFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// WithSession opens a transaction, runs fn with it and releases it.
//
// The transaction is committed when fn returns nil. It is rolled back when fn
// returns an error or panics; the panic is re-raised after the rollback.
func (db *DB) WithSession(ctx context.Context, fn func(ctx context.Context, session Session) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.WithSession").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "DB.WithSession").Msg("failed to roll back transaction")
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			log.Err(commitErr).Str("func", "DB.WithSession").Msg("failed to commit transaction")
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, tx)
}

// classify converts a driver error into a package error: unique violations
// become [ErrShipmentAlreadyExists], transient failures
// [ErrStorageUnavailable], anything else is wrapped with fallback.
func (db *DB) classify(err error, fallback error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	if db.errorClassificator.IsUniqueViolation(err) {
		return ErrShipmentAlreadyExists
	}

	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
