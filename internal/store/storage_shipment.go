// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-envios/internal/logger"
)

// shipmentStorage is the default implementation of [ShipmentStorage].
//
// It owns no state besides the database handle: every call to WithSession
// opens its own transaction and builds a repository bound to it, so no
// session is ever shared between requests.
type shipmentStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewShipmentStorage constructs a [ShipmentStorage] on top of db.
func NewShipmentStorage(db *DB, logger *logger.Logger) ShipmentStorage {
	logger.Debug().Msg("creating shipment storage")
	return &shipmentStorage{
		db:     db,
		logger: logger,
	}
}

// Init applies the schema migrations. Running it against an initialized
// database is a no-op.
func (s *shipmentStorage) Init(ctx context.Context) error {
	if err := s.db.Migrate(); err != nil {
		s.logger.Err(err).Str("func", "*shipmentStorage.Init").Msg("error migrating database")
		return fmt.Errorf("error initializing shipment storage: %w", err)
	}

	s.logger.Info().Str("func", "*shipmentStorage.Init").Str("driver", s.db.Driver()).Msg("shipment storage initialized")
	return nil
}

func (s *shipmentStorage) WithSession(ctx context.Context, fn func(ctx context.Context, repo ShipmentRepository) error) error {
	return s.db.WithSession(ctx, func(ctx context.Context, session Session) error {
		return fn(ctx, newShipmentRepository(session, s.db))
	})
}

func (s *shipmentStorage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
