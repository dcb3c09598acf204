// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyRequestBody is returned when a create or update request
	// carries no body at all.
	ErrEmptyRequestBody = errors.New("request body is required")

	// ErrInvalidRequestBody wraps JSON decoding failures: malformed syntax
	// or a field of the wrong type.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
