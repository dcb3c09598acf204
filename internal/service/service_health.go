// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/store"
)

type healthService struct {
	storage store.ShipmentStorage

	logger *logger.Logger
}

func NewHealthService(storage store.ShipmentStorage, logger *logger.Logger) HealthService {
	return &healthService{
		storage: storage,
		logger:  logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageIsNotReachable, err)
	}

	return nil
}
