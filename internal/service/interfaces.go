// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-envios/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . ShipmentService,AppInfoService,HealthService

// ShipmentService exposes the five record operations on shipments.
// Every call performs exactly one storage session.
type ShipmentService interface {
	ListShipments(ctx context.Context) ([]models.Shipment, error)
	GetShipment(ctx context.Context, id string) (models.Shipment, error)
	CreateShipment(ctx context.Context, create models.ShipmentCreate) (models.Shipment, error)
	UpdateShipment(ctx context.Context, update models.ShipmentUpdate) (models.Shipment, error)
	DeleteShipment(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the storage backend is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// ShipmentServiceWrapper defines middleware composition for ShipmentService.
// Implementations wrap an existing ShipmentService to add behavior such as
// validation.
type ShipmentServiceWrapper interface {
	Wrap(ShipmentService) ShipmentService
}
