// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the envios API.
//
// [ShipmentsClient] decouples the CLI from the wire protocol. Non-2xx
// responses are mapped by mapHTTPError to the sentinel values in errors.go so
// callers can branch with [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-envios/models"
)

// ShipmentsClient talks to a running envios server.
type ShipmentsClient interface {
	// List returns every stored shipment.
	List(ctx context.Context) ([]models.Shipment, error)

	// Get returns the shipment with the given id, or [ErrNotFound].
	Get(ctx context.Context, id string) (models.Shipment, error)

	// Create stores a new shipment. A taken id yields [ErrBadRequest].
	Create(ctx context.Context, shipment models.Shipment) (models.Shipment, error)

	// Update sends only the set fields of update to PUT /api/envios/{update.ID}.
	Update(ctx context.Context, update models.ShipmentUpdate) (models.Shipment, error)

	// Delete removes the shipment and returns the server's confirmation message.
	Delete(ctx context.Context, id string) (string, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
