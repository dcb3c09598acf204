// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the shipments API.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, panic recovery, response compression and the per-request
// timeout are applied here before requests reach the service layer.
package http
