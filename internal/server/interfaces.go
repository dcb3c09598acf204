// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract for the transport server.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received or the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server, waiting at most the configured
	// shutdown timeout for in-flight requests.
	Shutdown() error
}
