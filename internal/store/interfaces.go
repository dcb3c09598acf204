// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-envios/models"
)

// Session is the subset of *sql.Tx (and *sql.DB) used by repositories.
// A session is scoped to one request and released by [DB.WithSession].
type Session interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ShipmentRepository performs queries and mutations on the envios table
// through a single [Session].
type ShipmentRepository interface {
	// ListShipments returns every stored shipment in the order the engine
	// yields them. An empty table produces an empty, non-nil slice.
	ListShipments(ctx context.Context) ([]models.Shipment, error)

	// FindShipment returns the shipment with the given id or
	// [ErrShipmentNotFound].
	FindShipment(ctx context.Context, id string) (models.Shipment, error)

	// CreateShipment inserts a new row and returns it as stored.
	// A duplicate id yields [ErrShipmentAlreadyExists].
	CreateShipment(ctx context.Context, shipment models.Shipment) (models.Shipment, error)

	// UpdateShipment writes the set fields of update and returns the
	// resulting row, or [ErrShipmentNotFound].
	UpdateShipment(ctx context.Context, update models.ShipmentUpdate) (models.Shipment, error)

	// DeleteShipment removes the row with the given id or returns
	// [ErrShipmentNotFound].
	DeleteShipment(ctx context.Context, id string) error
}

//go:generate mockgen -destination=../mock/store_mock.go -package=mock . ShipmentRepository,ShipmentStorage

// ShipmentStorage owns the shipment table and hands out request-scoped
// repositories.
type ShipmentStorage interface {
	// Init ensures the envios table exists. It is idempotent.
	Init(ctx context.Context) error

	// WithSession runs fn with a repository bound to a fresh session.
	// The session is committed when fn returns nil and rolled back when fn
	// returns an error or panics; it is always released.
	WithSession(ctx context.Context, fn func(ctx context.Context, repo ShipmentRepository) error) error

	// Ping verifies the storage is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver-specific errors onto the categories the
// repositories care about.
type ErrorClassificator interface {
	// Classify reports whether err is worth retrying.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a primary key or unique
	// constraint violation.
	IsUniqueViolation(err error) bool
}
