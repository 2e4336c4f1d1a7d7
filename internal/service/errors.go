// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrPollFailure wraps the transport error that halted polling.
	ErrPollFailure = errors.New("poll failure")
	// ErrReadOnlyAttribute is returned when the XFDF attribute is read-only.
	ErrReadOnlyAttribute = errors.New("xfdf attribute is read-only")
	// ErrAttributeUnavailable is returned when the XFDF attribute is absent
	// or not available.
	ErrAttributeUnavailable = errors.New("xfdf attribute is unavailable")
	// ErrNoDocument is returned by saves while no document is loaded.
	ErrNoDocument = errors.New("no document loaded")
	// ErrDocumentReplaced is returned by SaveAs when the document was
	// replaced while the file was being created; the viewer is not rebound.
	ErrDocumentReplaced = errors.New("document replaced during save")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentExists        = errors.New("document already exists")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
