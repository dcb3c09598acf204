// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is returned by operations that have no entity to echo back,
// such as a successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Detail is a human-readable description of the failure.
	Detail string `json:"detail"`
}

// HealthResponse reports whether the service can reach its storage.
type HealthResponse struct {
	Status string `json:"status"`
}
