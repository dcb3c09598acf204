// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/utils"
	"github.com/MKhiriev/go-envios/models"
)

func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.services.ShipmentService.ListShipments(r.Context())
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	h.writeJSON(w, r, shipments)
}

func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	var create models.ShipmentCreate
	if err := decodeBody(r, &create); err != nil {
		writeError(w, r, err, "")
		return
	}

	created, err := h.services.ShipmentService.CreateShipment(r.Context(), create)
	if err != nil {
		writeError(w, r, err, create.ID.Value)
		return
	}

	h.writeJSON(w, r, created)
}

func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	shipment, err := h.services.ShipmentService.GetShipment(r.Context(), id)
	if err != nil {
		writeError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, shipment)
}

func (h *Handler) updateShipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update models.ShipmentUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, err, id)
		return
	}
	// the path wins over anything in the body
	update.ID = id

	updated, err := h.services.ShipmentService.UpdateShipment(r.Context(), update)
	if err != nil {
		writeError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, updated)
}

func (h *Handler) deleteShipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.ShipmentService.DeleteShipment(r.Context(), id); err != nil {
		writeError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{
		Message: fmt.Sprintf("shipment %s deleted successfully", id),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeBody reads exactly one JSON value from the request body into dst.
// Unknown keys are ignored; anything after the value is rejected.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyRequestBody
	}

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return ErrEmptyRequestBody
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidRequestBody)
	}

	return nil
}
