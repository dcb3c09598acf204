// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-envios/models"
)

// Field names accepted by [ShipmentValidator.Validate] to restrict
// validation to a subset of fields. They match the JSON keys.
const (
	FieldID        = "id"
	FieldRecipient = "recipient"
	FieldAddress   = "address"
	FieldStatus    = "status"
)

// ShipmentValidator implements [Validator] for shipment payloads.
//
// A create payload must carry every field; an empty string counts as
// present. An update payload only needs a target id, its fields are all
// optional.
type ShipmentValidator struct{}

func NewShipmentValidator() Validator {
	return &ShipmentValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.ShipmentCreate and models.ShipmentUpdate are accepted; anything
// else yields ErrUnsupportedType.
func (v *ShipmentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ShipmentCreate:
		return v.validateCreate(ctx, value, fields...)
	case *models.ShipmentCreate:
		return v.validateCreate(ctx, *value, fields...)

	case models.ShipmentUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ShipmentUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ShipmentValidator) validateCreate(ctx context.Context, create models.ShipmentCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldRecipient, FieldAddress, FieldStatus}
	}

	for _, f := range fields {
		var set bool
		switch f {
		case FieldID:
			set = create.ID.Set
		case FieldRecipient:
			set = create.Recipient.Set
		case FieldAddress:
			set = create.Address.Set
		case FieldStatus:
			set = create.Status.Set
		default:
			return ErrUnknownField
		}

		if !set {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	return nil
}

func (v *ShipmentValidator) validateUpdate(ctx context.Context, update models.ShipmentUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID == "" {
				return ErrEmptyID
			}
		case FieldRecipient, FieldAddress, FieldStatus:
			// optional on update
		default:
			return ErrUnknownField
		}
	}

	return nil
}
