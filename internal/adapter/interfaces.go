// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the platform's document store
// module.
//
// The primary abstraction is [DocumentStore], which decouples the viewer's
// synchronization logic from the REST transport. The package ships an HTTP
// implementation ([NewHTTPDocumentStore]) built on resty.
//
// Non-2xx responses and network failures are mapped by mapHTTPError to the
// sentinel errors in errors.go. Every failure wraps [ErrTransport]; 401, 403
// and 404 additionally wrap [ErrUnauthorized], [ErrForbidden] and
// [ErrNotFound], so callers can use [errors.Is] on either level.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_store_mock.go -package=mock

// DocumentStore is the remote document store as seen by one viewer.
// Operations keyed by a file id treat an empty id as a guarded no-op unless
// stated otherwise: a warning is logged and no request is sent.
type DocumentStore interface {
	// CheckAvailability probes the module endpoint. It never fails: any
	// transport error or non-2xx status yields false.
	CheckAvailability(ctx context.Context) bool

	// FetchFileInfo returns the metadata and XFDF snapshot of a document.
	// An empty fileID fails with [ErrNotFound] without a request.
	FetchFileInfo(ctx context.Context, fileID string) (models.FileInfo, error)

	// UpdateFile replaces the content of an existing document.
	UpdateFile(ctx context.Context, fileID string, data []byte) error

	// UpdateXfdf replaces the XFDF snapshot stored with a document.
	UpdateXfdf(ctx context.Context, fileID string, xfdf string) error

	// CreateFile stores data as a new document and returns its id.
	CreateFile(ctx context.Context, data []byte) (string, error)

	// AppendCommand adds an annotation delta to the document's command log.
	AppendCommand(ctx context.Context, fileID string, command string) error

	// ListCommandsSince returns the commands stored after since, oldest
	// first. An empty fileID yields an empty list.
	ListCommandsSince(ctx context.Context, fileID string, since time.Time) ([]models.CommandEntry, error)
}
