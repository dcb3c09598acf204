// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/models"
)

func newMockRepository(t *testing.T) (ShipmentRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newPostgresDB(conn, logger.Nop())
	return newShipmentRepository(db.DB, db), mock
}

func shipmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "recipient", "address", "status"})
}

func TestShipmentRepository_ListShipments(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT id, recipient, address, status FROM envios`).
		WillReturnRows(shipmentRows().
			AddRow("E1", "Ana", "Calle 1", "pending").
			AddRow("E2", "Luis", "Calle 2", "delivered"))

	got, err := repo.ListShipments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Shipment{
		{ID: "E1", Recipient: "Ana", Address: "Calle 1", Status: "pending"},
		{ID: "E2", Recipient: "Luis", Address: "Calle 2", Status: "delivered"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_ListShipments_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM envios`).WillReturnRows(shipmentRows())

	got, err := repo.ListShipments(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestShipmentRepository_ListShipments_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM envios`).WillReturnError(errors.New("boom"))

	_, err := repo.ListShipments(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestShipmentRepository_FindShipment(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM envios WHERE id = \$1`).
		WithArgs("E1").
		WillReturnRows(shipmentRows().AddRow("E1", "Ana", "Calle 1", "pending"))

	got, err := repo.FindShipment(context.Background(), "E1")
	require.NoError(t, err)

	assert.Equal(t, models.Shipment{ID: "E1", Recipient: "Ana", Address: "Calle 1", Status: "pending"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_FindShipment_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM envios WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(shipmentRows())

	_, err := repo.FindShipment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestShipmentRepository_CreateShipment(t *testing.T) {
	repo, mock := newMockRepository(t)
	s := models.Shipment{ID: "E1", Recipient: "Ana", Address: "Calle 1", Status: "pending"}

	mock.ExpectQuery(`INSERT INTO envios`).
		WithArgs("E1", "Ana", "Calle 1", "pending").
		WillReturnRows(shipmentRows().AddRow("E1", "Ana", "Calle 1", "pending"))

	got, err := repo.CreateShipment(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, s, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_CreateShipment_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO envios`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateShipment(context.Background(), models.Shipment{ID: "E1"})
	assert.ErrorIs(t, err, ErrShipmentAlreadyExists)
}

func TestShipmentRepository_CreateShipment_ConnectionLost(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO envios`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := repo.CreateShipment(context.Background(), models.Shipment{ID: "E1"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestShipmentRepository_UpdateShipment(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`UPDATE envios SET status = \$1 WHERE id = \$2`).
		WithArgs("delivered", "E1").
		WillReturnRows(shipmentRows().AddRow("E1", "Ana", "Calle 1", "delivered"))

	got, err := repo.UpdateShipment(context.Background(), models.ShipmentUpdate{
		ID:     "E1",
		Status: models.Some("delivered"),
	})
	require.NoError(t, err)

	assert.Equal(t, "delivered", got.Status)
	assert.Equal(t, "Ana", got.Recipient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_UpdateShipment_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`UPDATE envios`).WillReturnRows(shipmentRows())

	_, err := repo.UpdateShipment(context.Background(), models.ShipmentUpdate{
		ID:     "missing",
		Status: models.Some("delivered"),
	})
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestShipmentRepository_UpdateShipment_NoChangesReadsRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM envios WHERE id = \$1`).
		WithArgs("E1").
		WillReturnRows(shipmentRows().AddRow("E1", "Ana", "Calle 1", "pending"))

	got, err := repo.UpdateShipment(context.Background(), models.ShipmentUpdate{ID: "E1"})
	require.NoError(t, err)

	assert.Equal(t, "pending", got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_DeleteShipment(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM envios WHERE id = \$1`).
		WithArgs("E1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteShipment(context.Background(), "E1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepository_DeleteShipment_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM envios`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteShipment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestShipmentRepository_DeleteShipment_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(`DELETE FROM envios`).WillReturnError(errors.New("boom"))

	err := repo.DeleteShipment(context.Background(), "E1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
