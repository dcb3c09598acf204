// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound shipment payloads before any storage
// access. Failures are reported with the sentinel errors in errors.go, which
// the service layer wraps so the HTTP layer can answer 422.
package validators

import "context"

// Validator validates a request payload. fields, when given, restricts the
// check to the named fields.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
