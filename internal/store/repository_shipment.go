// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/models"
)

// shipmentRepository is the database/sql implementation of
// [ShipmentRepository]. It is bound to one session for its whole life and
// must not outlive the [DB.WithSession] call that created it.
type shipmentRepository struct {
	session Session
	db      *DB
}

func newShipmentRepository(session Session, db *DB) ShipmentRepository {
	return &shipmentRepository{
		session: session,
		db:      db,
	}
}

func (r *shipmentRepository) ListShipments(ctx context.Context) ([]models.Shipment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListShipmentsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.session.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("error executing query")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	shipments := make([]models.Shipment, 0)
	for rows.Next() {
		var s models.Shipment
		if err = rows.Scan(&s.ID, &s.Recipient, &s.Address, &s.Status); err != nil {
			log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		shipments = append(shipments, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shipments, nil
}

func (r *shipmentRepository) FindShipment(ctx context.Context, id string) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindShipmentQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.FindShipment").Msg("error building query")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanOne(ctx, "*shipmentRepository.FindShipment", query, args)
}

func (r *shipmentRepository) CreateShipment(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateShipmentQuery(r.db.builder, shipment)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.CreateShipment").Msg("error building query")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.scanOne(ctx, "*shipmentRepository.CreateShipment", query, args)
	if err != nil {
		return models.Shipment{}, err
	}

	log.Debug().Str("func", "*shipmentRepository.CreateShipment").Str("id", created.ID).Msg("shipment created")
	return created, nil
}

func (r *shipmentRepository) UpdateShipment(ctx context.Context, update models.ShipmentUpdate) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	// nothing to write, answer with the current row
	if !update.HasChanges() {
		return r.FindShipment(ctx, update.ID)
	}

	query, args, err := buildUpdateShipmentQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.UpdateShipment").Msg("error building query")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.scanOne(ctx, "*shipmentRepository.UpdateShipment", query, args)
	if err != nil {
		return models.Shipment{}, err
	}

	log.Debug().Str("func", "*shipmentRepository.UpdateShipment").Str("id", updated.ID).Msg("shipment updated")
	return updated, nil
}

func (r *shipmentRepository) DeleteShipment(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteShipmentQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.DeleteShipment").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.session.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.DeleteShipment").Msg("error executing query")
		return r.db.classify(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.DeleteShipment").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrShipmentNotFound
	}

	log.Debug().Str("func", "*shipmentRepository.DeleteShipment").Str("id", id).Msg("shipment deleted")
	return nil
}

// scanOne runs a query expected to yield at most one shipment row.
// No row means [ErrShipmentNotFound].
func (r *shipmentRepository) scanOne(ctx context.Context, fn, query string, args []any) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	var s models.Shipment
	err := r.session.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Recipient, &s.Address, &s.Status)

	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Shipment{}, ErrShipmentNotFound
	default:
		log.Err(err).Str("func", fn).Msg("error executing query")
		return models.Shipment{}, r.db.classify(err, ErrExecutingQuery)
	}
}
