// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/store"
	"github.com/MKhiriev/go-envios/models"
)

// shipmentService is the default [ShipmentService]. Store errors such as
// [store.ErrShipmentNotFound] are returned unchanged so the transport layer
// can map them.
type shipmentService struct {
	storage store.ShipmentStorage

	logger *logger.Logger
}

func NewShipmentService(storage store.ShipmentStorage, logger *logger.Logger) ShipmentService {
	return &shipmentService{
		storage: storage,
		logger:  logger,
	}
}

func (s *shipmentService) ListShipments(ctx context.Context) ([]models.Shipment, error) {
	var shipments []models.Shipment

	err := s.storage.WithSession(ctx, func(ctx context.Context, repo store.ShipmentRepository) error {
		var err error
		shipments, err = repo.ListShipments(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return shipments, nil
}

func (s *shipmentService) GetShipment(ctx context.Context, id string) (models.Shipment, error) {
	var shipment models.Shipment

	err := s.storage.WithSession(ctx, func(ctx context.Context, repo store.ShipmentRepository) error {
		var err error
		shipment, err = repo.FindShipment(ctx, id)
		return err
	})

	return shipment, err
}

// CreateShipment rejects an id that is already stored before inserting.
// A concurrent insert of the same id is still caught by the primary key.
func (s *shipmentService) CreateShipment(ctx context.Context, create models.ShipmentCreate) (models.Shipment, error) {
	var created models.Shipment

	err := s.storage.WithSession(ctx, func(ctx context.Context, repo store.ShipmentRepository) error {
		shipment := create.Shipment()

		_, err := repo.FindShipment(ctx, shipment.ID)
		switch {
		case err == nil:
			return store.ErrShipmentAlreadyExists
		case !errors.Is(err, store.ErrShipmentNotFound):
			return err
		}

		created, err = repo.CreateShipment(ctx, shipment)
		return err
	})
	if err != nil {
		return models.Shipment{}, err
	}

	logger.FromContext(ctx).Info().Str("id", created.ID).Msg("shipment created")
	return created, nil
}

func (s *shipmentService) UpdateShipment(ctx context.Context, update models.ShipmentUpdate) (models.Shipment, error) {
	var updated models.Shipment

	err := s.storage.WithSession(ctx, func(ctx context.Context, repo store.ShipmentRepository) error {
		var err error
		updated, err = repo.UpdateShipment(ctx, update)
		return err
	})
	if err != nil {
		return models.Shipment{}, err
	}

	return updated, nil
}

func (s *shipmentService) DeleteShipment(ctx context.Context, id string) error {
	err := s.storage.WithSession(ctx, func(ctx context.Context, repo store.ShipmentRepository) error {
		return repo.DeleteShipment(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("id", id).Msg("shipment deleted")
	return nil
}
