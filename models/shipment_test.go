// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentUpdate_UnmarshalPartial(t *testing.T) {
	var u ShipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"status":"entregado"}`), &u))

	assert.True(t, u.Status.Set)
	assert.Equal(t, "entregado", u.Status.Value)
	assert.False(t, u.Recipient.Set)
	assert.False(t, u.Address.Set)
	assert.True(t, u.HasChanges())
}

func TestShipmentUpdate_EmptyStringIsSet(t *testing.T) {
	var u ShipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"address":""}`), &u))

	assert.True(t, u.Address.Set)
	assert.Equal(t, "", u.Address.Value)
}

func TestShipmentUpdate_NullIsUnset(t *testing.T) {
	var u ShipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"recipient":null}`), &u))

	assert.False(t, u.Recipient.Set)
	assert.False(t, u.HasChanges())
}

func TestShipmentUpdate_WrongTypeFails(t *testing.T) {
	var u ShipmentUpdate
	err := json.Unmarshal([]byte(`{"status":42}`), &u)
	assert.Error(t, err)
}

func TestShipmentUpdate_IDIgnoredInBody(t *testing.T) {
	var u ShipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"id":"other","status":"x"}`), &u))
	assert.Empty(t, u.ID)
}

func TestShipmentUpdate_KeysAreCaseSensitive(t *testing.T) {
	var u ShipmentUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"STATUS":"x","Recipient":"Luis","address":"Calle 2"}`), &u))

	assert.False(t, u.Status.Set)
	assert.False(t, u.Recipient.Set)
	assert.Equal(t, Some("Calle 2"), u.Address)
}

func TestShipmentCreate_KeysAreCaseSensitive(t *testing.T) {
	var c ShipmentCreate
	require.NoError(t, json.Unmarshal([]byte(`{"ID":"E1","RECIPIENT":"Ana","address":"Calle 1","status":"p"}`), &c))

	assert.False(t, c.ID.Set)
	assert.False(t, c.Recipient.Set)
	assert.Equal(t, Some("Calle 1"), c.Address)
	assert.Equal(t, Some("p"), c.Status)
}

func TestShipmentCreate_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not an object", body: `["E1"]`},
		{name: "wrong field type", body: `{"id":5,"recipient":"Ana","address":"a","status":"s"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c ShipmentCreate
			assert.Error(t, json.Unmarshal([]byte(tt.body), &c))
		})
	}
}

func TestShipmentCreate_UnknownKeysIgnored(t *testing.T) {
	var c ShipmentCreate
	require.NoError(t, json.Unmarshal([]byte(`{"id":"E1","recipient":"Ana","address":"a","status":"s","extra":1}`), &c))

	assert.Equal(t, Shipment{ID: "E1", Recipient: "Ana", Address: "a", Status: "s"}, c.Shipment())
}

func TestShipmentUpdate_MarshalOmitsUnset(t *testing.T) {
	b, err := json.Marshal(ShipmentUpdate{ID: "E1", Status: Some("entregado")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"entregado"}`, string(b))
}

func TestShipmentCreate_Shipment(t *testing.T) {
	var c ShipmentCreate
	require.NoError(t, json.Unmarshal([]byte(`{"id":"E1","recipient":"Ana","address":"Calle 1","status":"pendiente"}`), &c))

	assert.Equal(t, Shipment{ID: "E1", Recipient: "Ana", Address: "Calle 1", Status: "pendiente"}, c.Shipment())
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
