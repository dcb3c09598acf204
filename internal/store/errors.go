// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrShipmentNotFound is returned when a lookup, update or delete targets
	// an id that has no row in the envios table.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrShipmentAlreadyExists is returned when an insert violates the
	// primary key, i.e. a shipment with the same id is already stored.
	ErrShipmentAlreadyExists = errors.New("shipment with this ID already exists")

	// ErrStorageUnavailable wraps driver errors classified as [Retryable]:
	// lost connections, serialization failures, deadlocks. The request is
	// not retried; the classification only changes the reported status.
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction for a session.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a session's
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan shipment row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan shipment rows")

	// ErrUnsupportedDriver is returned when a connection is requested for a
	// driver this package cannot serve.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
