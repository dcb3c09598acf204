// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every payload validation failure.
	ErrValidation = errors.New("validation error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrStorageIsNotReachable = errors.New("storage is not reachable")
)
