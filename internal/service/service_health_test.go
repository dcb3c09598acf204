// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/mock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := mock.NewMockShipmentStorage(ctrl)
	svc := NewHealthService(mockStorage, logger.Nop())

	mockStorage.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Check(context.Background()))

	down := errors.New("connection refused")
	mockStorage.EXPECT().Ping(gomock.Any()).Return(down)

	err := svc.Check(context.Background())
	assert.ErrorIs(t, err, ErrStorageIsNotReachable)
	assert.ErrorIs(t, err, down)
}
