// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path is registered for other methods only. The
// document store answers 404 instead, exactly as for an unknown path, so the
// set of routes cannot be probed with unsupported methods.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("method is not served for this path")

	http.NotFound(w, r)
}
