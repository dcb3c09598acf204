// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// set before Route so the /api sub-router inherits them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Route("/api", func(r chi.Router) {
		r.Get("/envios", h.listShipments)
		r.Post("/envios", h.createShipment)
		r.Get("/envios/{id}", h.getShipment)
		r.Put("/envios/{id}", h.updateShipment)
		r.Delete("/envios/{id}", h.deleteShipment)

		r.Get("/openapi.json", h.getOpenAPI)
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.getHealth)
	})

	return router
}
