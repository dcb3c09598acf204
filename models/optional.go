// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field: absent, explicitly null, or set to a value.
//
// A key missing from the payload leaves Set false. A JSON null is treated the
// same as a missing key. Any other value, including "", sets Set to true.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Value = zero
		o.Set = false
		return nil
	}

	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Set = true

	return nil
}

// MarshalJSON implements [json.Marshaler]. An unset value is encoded as null;
// use `omitzero` on the field to drop it from the output entirely.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// IsZero lets encoding/json's omitzero option skip unset values.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}
