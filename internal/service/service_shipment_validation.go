// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-envios/internal/validators"
	"github.com/MKhiriev/go-envios/models"
)

// ShipmentValidationService checks payloads before the wrapped service
// touches storage. Validation failures wrap [ErrValidation].
type ShipmentValidationService struct {
	inner     ShipmentService
	validator validators.Validator
}

func NewShipmentValidationService() ShipmentServiceWrapper {
	return &ShipmentValidationService{
		validator: validators.NewShipmentValidator(),
	}
}

func (v *ShipmentValidationService) ListShipments(ctx context.Context) ([]models.Shipment, error) {
	return v.inner.ListShipments(ctx)
}

func (v *ShipmentValidationService) GetShipment(ctx context.Context, id string) (models.Shipment, error) {
	return v.inner.GetShipment(ctx, id)
}

func (v *ShipmentValidationService) CreateShipment(ctx context.Context, create models.ShipmentCreate) (models.Shipment, error) {
	if err := v.validator.Validate(ctx, create); err != nil {
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateShipment(ctx, create)
}

func (v *ShipmentValidationService) UpdateShipment(ctx context.Context, update models.ShipmentUpdate) (models.Shipment, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateShipment(ctx, update)
}

func (v *ShipmentValidationService) DeleteShipment(ctx context.Context, id string) error {
	return v.inner.DeleteShipment(ctx, id)
}

func (v *ShipmentValidationService) Wrap(wrapped ShipmentService) ShipmentService {
	v.inner = wrapped
	return v
}
