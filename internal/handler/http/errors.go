// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingCSRFToken is returned when a document store request carries
	// no X-Csrf-Token header.
	ErrMissingCSRFToken = errors.New("missing `X-Csrf-Token` header")

	// ErrInvalidCSRFToken is returned when the header does not match the
	// configured token.
	ErrInvalidCSRFToken = errors.New("invalid `X-Csrf-Token` header")

	// ErrInvalidSince is returned when the since query parameter is not an
	// RFC 3339 timestamp.
	ErrInvalidSince = errors.New("invalid `since` query parameter")
)
