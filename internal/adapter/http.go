// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-envios/internal/config"
	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/utils"
	"github.com/MKhiriev/go-envios/models"
)

const (
	shipmentsPath = "/api/envios"
	versionPath   = "/api/version"
)

type httpShipmentsClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPShipmentsClient constructs the HTTP/REST implementation of
// [ShipmentsClient]. The server address is normalised first: a missing scheme
// defaults to http and trailing slashes are dropped.
func NewHTTPShipmentsClient(cfg config.ClientConfig, logger *logger.Logger) (ShipmentsClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("shipments client created")

	return &httpShipmentsClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func shipmentPath(id string) string {
	return shipmentsPath + "/" + url.PathEscape(id)
}

func (h *httpShipmentsClient) List(ctx context.Context) ([]models.Shipment, error) {
	var shipments []models.Shipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&shipments).
		Get(shipmentsPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if shipments == nil {
		shipments = []models.Shipment{}
	}

	return shipments, nil
}

func (h *httpShipmentsClient) Get(ctx context.Context, id string) (models.Shipment, error) {
	if id == "" {
		return models.Shipment{}, ErrEmptyID
	}

	var shipment models.Shipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&shipment).
		Get(shipmentPath(id))
	if err != nil {
		return models.Shipment{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Shipment{}, err
	}

	return shipment, nil
}

func (h *httpShipmentsClient) Create(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	var created models.Shipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(shipment).
		SetResult(&created).
		Post(shipmentsPath)
	if err != nil {
		return models.Shipment{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Shipment{}, err
	}

	return created, nil
}

func (h *httpShipmentsClient) Update(ctx context.Context, update models.ShipmentUpdate) (models.Shipment, error) {
	if update.ID == "" {
		return models.Shipment{}, ErrEmptyID
	}

	var updated models.Shipment

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&updated).
		Put(shipmentPath(update.ID))
	if err != nil {
		return models.Shipment{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Shipment{}, err
	}

	return updated, nil
}

func (h *httpShipmentsClient) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrEmptyID
	}

	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&msg).
		Delete(shipmentPath(id))
	if err != nil {
		return "", fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpShipmentsClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
