// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-envios/internal/config"
	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/internal/service"
	"github.com/MKhiriev/go-envios/internal/store"
	"github.com/MKhiriev/go-envios/models"
)

// newAPIServer runs the full stack (router, services, storage) against an
// in-memory SQLite database.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App:     config.App{Version: "1.0.0"},
		Storage: config.Storage{DB: config.DB{DSN: ":memory:"}},
		Server:  config.Server{RequestTimeout: 5 * time.Second},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	require.NoError(t, storages.ShipmentStorage.Init(ctx))

	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg.Server, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(b)
}

func TestAPI_ShipmentLifecycle(t *testing.T) {
	srv := newAPIServer(t)

	status, body := call(t, srv, http.MethodPost, "/api/envios",
		`{"id":"E1","recipient":"Ana","address":"Calle 1","status":"pending"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.JSONEq(t, `{"id":"E1","recipient":"Ana","address":"Calle 1","status":"pending"}`, body)

	status, body = call(t, srv, http.MethodGet, "/api/envios/E1", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"E1","recipient":"Ana","address":"Calle 1","status":"pending"}`, body)

	status, body = call(t, srv, http.MethodPut, "/api/envios/E1", `{"status":"delivered"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"E1","recipient":"Ana","address":"Calle 1","status":"delivered"}`, body)

	status, body = call(t, srv, http.MethodDelete, "/api/envios/E1", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"shipment E1 deleted successfully"}`, body)

	status, body = call(t, srv, http.MethodGet, "/api/envios/E1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"shipment with ID E1 not found"}`, body)
}

func TestAPI_DuplicateCreateKeepsOriginal(t *testing.T) {
	srv := newAPIServer(t)

	status, _ := call(t, srv, http.MethodPost, "/api/envios",
		`{"id":"E1","recipient":"Ana","address":"Calle 1","status":"pending"}`)
	require.Equal(t, http.StatusOK, status)

	status, body := call(t, srv, http.MethodPost, "/api/envios",
		`{"id":"E1","recipient":"Luis","address":"Calle 9","status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"detail":"shipment with this ID already exists"}`, body)

	_, body = call(t, srv, http.MethodGet, "/api/envios/E1", "")
	assert.JSONEq(t, `{"id":"E1","recipient":"Ana","address":"Calle 1","status":"pending"}`, body)
}

func TestAPI_CreateValidation(t *testing.T) {
	srv := newAPIServer(t)

	status, body := call(t, srv, http.MethodPost, "/api/envios", `{"id":"E1","recipient":"Ana","status":"pending"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "address")

	status, _ = call(t, srv, http.MethodPost, "/api/envios", `{"id":"E1","recipient":null,"address":"a","status":"s"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// nothing was stored
	_, body = call(t, srv, http.MethodGet, "/api/envios", "")
	assert.Equal(t, "[]", body)
}

func TestAPI_UpdateSemantics(t *testing.T) {
	srv := newAPIServer(t)

	call(t, srv, http.MethodPost, "/api/envios", `{"id":"E1","recipient":"Ana","address":"Calle 1","status":"pending"}`)

	// empty string overwrites, null and absent keep
	status, body := call(t, srv, http.MethodPut, "/api/envios/E1", `{"recipient":"","address":null}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"E1","recipient":"","address":"Calle 1","status":"pending"}`, body)

	// no fields at all returns the current record
	status, body = call(t, srv, http.MethodPut, "/api/envios/E1", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"E1","recipient":"","address":"Calle 1","status":"pending"}`, body)

	status, _ = call(t, srv, http.MethodPut, "/api/envios/missing", `{}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, srv, http.MethodPut, "/api/envios/missing", `{"status":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_ListReflectsLiveSet(t *testing.T) {
	srv := newAPIServer(t)

	for _, id := range []string{"A", "B", "C"} {
		status, _ := call(t, srv, http.MethodPost, "/api/envios",
			`{"id":"`+id+`","recipient":"r","address":"a","status":"s"}`)
		require.Equal(t, http.StatusOK, status)
	}
	call(t, srv, http.MethodDelete, "/api/envios/B", "")

	_, body := call(t, srv, http.MethodGet, "/api/envios", "")

	var got []models.Shipment
	require.NoError(t, json.Unmarshal([]byte(body), &got))

	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"A", "C"}, ids)
}

func TestAPI_DeleteMissing(t *testing.T) {
	srv := newAPIServer(t)

	status, body := call(t, srv, http.MethodDelete, "/api/envios/nope", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"shipment with ID nope not found"}`, body)
}

func TestAPI_HealthAndVersion(t *testing.T) {
	srv := newAPIServer(t)

	status, body := call(t, srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	status, body = call(t, srv, http.MethodGet, "/api/version", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.0.0", body)
}

func TestAPI_TrailingDataRejected(t *testing.T) {
	srv := newAPIServer(t)

	status, _ := call(t, srv, http.MethodPost, "/api/envios",
		`{"id":"E2","recipient":"Ana","address":"Calle 1","status":"p"} garbage`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = call(t, srv, http.MethodPost, "/api/envios",
		`{"id":"E2","recipient":"Ana","address":"Calle 1","status":"p"}{"id":"E3"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	_, body := call(t, srv, http.MethodGet, "/api/envios", "")
	assert.Equal(t, "[]", body)

	status, _ = call(t, srv, http.MethodPost, "/api/envios",
		`{"id":"E2","recipient":"Ana","address":"Calle 1","status":"p"}`+"\n")
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, srv, http.MethodPut, "/api/envios/E2", `{"status":"x"} garbage`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	_, body = call(t, srv, http.MethodGet, "/api/envios/E2", "")
	assert.JSONEq(t, `{"id":"E2","recipient":"Ana","address":"Calle 1","status":"p"}`, body)
}

func TestAPI_KeysAreCaseSensitive(t *testing.T) {
	srv := newAPIServer(t)

	status, body := call(t, srv, http.MethodPost, "/api/envios",
		`{"ID":"E1","RECIPIENT":"Ana","Address":"Calle 1","Status":"p"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "field required: id")

	status, _ = call(t, srv, http.MethodPost, "/api/envios",
		`{"id":"E2","recipient":"Ana","address":"Calle 1","status":"p"}`)
	require.Equal(t, http.StatusOK, status)

	status, body = call(t, srv, http.MethodPut, "/api/envios/E2", `{"STATUS":"x"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":"E2","recipient":"Ana","address":"Calle 1","status":"p"}`, body)
}
