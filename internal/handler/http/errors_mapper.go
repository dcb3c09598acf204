// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/service"
	"github.com/MKhiriev/go-envios/internal/store"
	"github.com/MKhiriev/go-envios/internal/utils"
	"github.com/MKhiriev/go-envios/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyRequestBody:   http.StatusUnprocessableEntity,
	ErrInvalidRequestBody: http.StatusUnprocessableEntity,

	service.ErrValidation:            http.StatusUnprocessableEntity,
	service.ErrStorageIsNotReachable: http.StatusServiceUnavailable,

	store.ErrShipmentNotFound:      http.StatusNotFound,
	store.ErrShipmentAlreadyExists: http.StatusBadRequest,
	store.ErrStorageUnavailable:    http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorDetail returns the client-facing message for err. Server-side
// failures never leak their cause.
func errorDetail(err error, status int, id string) string {
	switch {
	case errors.Is(err, store.ErrShipmentNotFound):
		return fmt.Sprintf("shipment with ID %s not found", id)
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	default:
		return err.Error()
	}
}

// writeError maps err to a status code and writes a {"detail": ...} body.
// id names the shipment the request addressed, if any.
func writeError(w http.ResponseWriter, r *http.Request, err error, id string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Detail: errorDetail(err, status, id)}, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
