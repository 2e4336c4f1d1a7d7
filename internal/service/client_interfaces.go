// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

// ClientSyncEngine keeps the annotation layer of one mounted viewer in sync
// with the document store. Export callbacks and poll ticks are serialized;
// they never run concurrently for the same engine.
type ClientSyncEngine interface {
	// OnAnnotationChanged is the annotationChanged handler. System-originated
	// changes are ignored; user changes schedule a debounced export carrying
	// the latest change.
	OnAnnotationChanged(change models.AnnotationChange)

	// ExportXfdf writes the current snapshot into the XFDF attribute right
	// away. Returns ErrReadOnlyAttribute or ErrAttributeUnavailable when the
	// attribute cannot be written.
	ExportXfdf(ctx context.Context) error

	// RetrieveXfdf is the SDK's XFDF retriever. It returns the attribute
	// value only while a file is bound, auto import is enabled and the
	// attribute is available.
	RetrieveXfdf(ctx context.Context) (string, bool)

	// PollOnce runs one import tick. It blocks until a document is loaded
	// and does nothing while no file is bound. Transport failures are
	// returned wrapped in ErrPollFailure.
	PollOnce(ctx context.Context) error

	// StartPolling runs PollOnce every poll interval until Close, ctx
	// cancellation or the first failure.
	StartPolling(ctx context.Context)

	// OnFileChanged resets the command-log cursor after the bound file id
	// changed.
	OnFileChanged()

	// OnDocumentUnloaded drops a pending export and resets the sync state.
	OnDocumentUnloaded()

	// State returns a copy of the sync state.
	State() models.SyncState

	// Close stops polling, drops a pending export and makes every later
	// callback a no-op. Safe to call more than once.
	Close()
}

// ClientSaveService saves the loaded document with its annotations to the
// document store while showing the busy indicator.
type ClientSaveService interface {
	// SaveCurrent updates the bound document. It is a no-op while no file is
	// bound.
	SaveCurrent(ctx context.Context) error

	// SaveAs stores the document as a new file and binds the viewer to the
	// returned id.
	SaveAs(ctx context.Context) (string, error)
}
