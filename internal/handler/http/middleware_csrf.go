// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"
)

const csrfHeader = "X-Csrf-Token"

// withCSRF rejects document store requests whose X-Csrf-Token header does not
// match the configured token with 403 Forbidden. The comparison runs in
// constant time. Without a configured token every request passes.
func (h *Handler) withCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.csrfToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := r.Header.Get(csrfHeader)
		if token == "" {
			writeError(w, r, ErrMissingCSRFToken, "request rejected")
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.csrfToken)) != 1 {
			writeError(w, r, ErrInvalidCSRFToken, "request rejected")
			return
		}

		next.ServeHTTP(w, r)
	})
}
