// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Shipment is the single persisted entity of the service.
// ID is assigned by the caller on creation and never changes afterwards.
type Shipment struct {
	// ID is the unique identifier of the shipment (primary key).
	ID string `json:"id"`

	// Recipient is the name of the person receiving the shipment.
	Recipient string `json:"recipient"`

	// Address is the delivery address.
	Address string `json:"address"`

	// Status is a free-form delivery status (e.g. "pendiente", "entregado").
	Status string `json:"status"`
}

// TableName returns the name of the database table
// associated with the Shipment model.
func (s Shipment) TableName() string {
	return "envios"
}

// ShipmentCreate is the inbound payload of the create operation.
// Every field must be present in the request body; presence is tracked
// so that a missing key can be told apart from an empty string.
type ShipmentCreate struct {
	ID        Optional[string] `json:"id,omitzero"`
	Recipient Optional[string] `json:"recipient,omitzero"`
	Address   Optional[string] `json:"address,omitzero"`
	Status    Optional[string] `json:"status,omitzero"`
}

// UnmarshalJSON implements [json.Unmarshaler]. Keys must match exactly;
// differently cased or unknown keys are ignored.
func (c *ShipmentCreate) UnmarshalJSON(b []byte) error {
	return unmarshalExactKeys(b, map[string]*Optional[string]{
		"id":        &c.ID,
		"recipient": &c.Recipient,
		"address":   &c.Address,
		"status":    &c.Status,
	})
}

// Shipment converts a validated create payload into a [Shipment].
// Unset fields become empty strings, so callers must validate first.
func (c ShipmentCreate) Shipment() Shipment {
	return Shipment{
		ID:        c.ID.Value,
		Recipient: c.Recipient.Value,
		Address:   c.Address.Value,
		Status:    c.Status.Value,
	}
}

// ShipmentUpdate describes a partial update of a single shipment.
// Only fields that are set are written; unset fields keep the stored value.
type ShipmentUpdate struct {
	// ID identifies the shipment to update. It is taken from the URL path,
	// never from the request body.
	ID string `json:"-"`

	Recipient Optional[string] `json:"recipient,omitzero"`
	Address   Optional[string] `json:"address,omitzero"`
	Status    Optional[string] `json:"status,omitzero"`
}

// HasChanges reports whether at least one field is set.
func (u ShipmentUpdate) HasChanges() bool {
	return u.Recipient.Set || u.Address.Set || u.Status.Set
}

// UnmarshalJSON implements [json.Unmarshaler]. An "id" key in the body is
// ignored, as are differently cased or unknown keys.
func (u *ShipmentUpdate) UnmarshalJSON(b []byte) error {
	return unmarshalExactKeys(b, map[string]*Optional[string]{
		"recipient": &u.Recipient,
		"address":   &u.Address,
		"status":    &u.Status,
	})
}

// unmarshalExactKeys decodes a JSON object and fills fields by exact key
// match. encoding/json alone would also accept "ID" for "id".
func unmarshalExactKeys(b []byte, fields map[string]*Optional[string]) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	for key, dst := range fields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := dst.UnmarshalJSON(value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}

	return nil
}
