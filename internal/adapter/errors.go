// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrEmptyAddress = errors.New("empty address")
	ErrInvalidURL   = errors.New("address must include host and scheme")
	ErrEmptyID      = errors.New("shipment id is empty")
)
