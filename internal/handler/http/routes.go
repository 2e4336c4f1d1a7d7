// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Paths served by the handler. They mirror the client adapter's endpoints.
const (
	moduleVersionPath = "/rest/version/v1/modules/webviewer"
	documentsPath     = "/rest/documentstore/v1/documents"

	sinceParam = "since"
	nameParam  = "name"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get(moduleVersionPath, h.getServerVersion)

	router.Route(documentsPath, func(r chi.Router) {
		r.Use(h.withCSRF)

		r.Post("/", h.createDocument)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getDocument)
			r.Put("/", h.updateDocument)
			r.Get("/content", h.getDocumentContent)
			r.Put("/xfdf", h.updateXfdf)
			r.Post("/commands", h.appendCommand)
			r.Get("/commands", h.listCommands)
		})
	})

	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
