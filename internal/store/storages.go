// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-envios/internal/config"
	"github.com/MKhiriev/go-envios/internal/logger"
)

// Storages groups the storage components handed to the service layer.
type Storages struct {
	ShipmentStorage ShipmentStorage

	db *DB
}

// NewStorages connects to the database named by cfg.DB.DSN and builds the
// storage components on top of it. Call Close when done.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		ShipmentStorage: NewShipmentStorage(db, log),
		db:              db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
