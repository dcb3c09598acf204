// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-envios/internal/config"
	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/store"
)

type Services struct {
	ShipmentService ShipmentService
	AppInfoService  AppInfoService
	HealthService   HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	shipmentService := NewShipmentValidationService().
		Wrap(NewShipmentService(storages.ShipmentStorage, logger))

	return &Services{
		ShipmentService: shipmentService,
		AppInfoService:  appInfoService,
		HealthService:   NewHealthService(storages.ShipmentStorage, logger),
	}, nil
}
