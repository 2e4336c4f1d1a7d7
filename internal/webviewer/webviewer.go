// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package webviewer describes the capabilities of the document rendering
// SDK consumed by the synchronization core.
//
// The SDK owns rendering, the editing UI and the in-memory document and
// annotation models. The core only loads documents, listens to events,
// exports and imports annotation markup and toggles UI elements.
package webviewer

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

// EventName identifies an SDK event.
type EventName string

const (
	EventDocumentLoaded    EventName = "documentLoaded"
	EventDocumentUnloaded  EventName = "documentUnloaded"
	EventAnnotationChanged EventName = "annotationChanged"
)

// LoadingModal is the UI element used as the busy indicator.
const LoadingModal = "loadingModal"

var (
	// ErrNoDocument is returned by operations that need a loaded document.
	ErrNoDocument = errors.New("no document loaded")
	// ErrUnknownAnnotation is returned when an edit targets a missing annotation.
	ErrUnknownAnnotation = errors.New("unknown annotation")
)

// Event is delivered to subscribers. Change is set for annotationChanged
// only.
type Event struct {
	Name   EventName
	Change models.AnnotationChange
}

// Handler receives events. Handlers of one event run synchronously in
// registration order.
type Handler func(Event)

// Subscription is the token returned by Subscribe. The zero value is never
// returned for a live subscription.
type Subscription struct {
	ID    uint64
	Event EventName
}

// XFDFRetriever supplies the annotation snapshot imported while a document
// loads. ok is false when nothing should be imported.
type XFDFRetriever func(ctx context.Context) (xfdf string, ok bool)

// ExportOptions selects what ExportAnnotations serializes.
type ExportOptions struct {
	// Annotations restricts the export to the given list. Nil exports all.
	Annotations []models.Annotation

	Fields  bool
	Links   bool
	Widgets bool
}

// FileDataOptions controls FileData.
type FileDataOptions struct {
	// Xfdf is merged into the returned document bytes.
	Xfdf string
}

// DocumentViewer loads documents and publishes lifecycle events.
type DocumentViewer interface {
	LoadDocument(ctx context.Context, source string) error
	CloseDocument(ctx context.Context) error
	// Document returns the loaded document or nil.
	Document() Document
	IsDocumentLoaded() bool
	// WaitForDocumentLoaded blocks until a document has finished loading or
	// ctx is done.
	WaitForDocumentLoaded(ctx context.Context) error
	// SetDocumentXFDFRetriever installs the retriever consulted by the next
	// loads. A nil retriever disables it.
	SetDocumentXFDFRetriever(r XFDFRetriever)
	Subscribe(event EventName, h Handler) Subscription
	Unsubscribe(s Subscription)
}

// AnnotationManager exports and imports the annotation layer of the loaded
// document.
type AnnotationManager interface {
	ExportAnnotations(ctx context.Context, opts ExportOptions) (string, error)
	// ExportAnnotationCommand returns the user changes made since the
	// previous call, or the empty command.
	ExportAnnotationCommand(ctx context.Context) (string, error)
	// ImportAnnotations applies a snapshot. The resulting events are
	// flagged as imported.
	ImportAnnotations(ctx context.Context, xfdf string) ([]models.Annotation, error)
	// ImportAnnotationCommand applies a delta and returns the annotations it
	// touched. The resulting events are flagged as imported.
	ImportAnnotationCommand(ctx context.Context, command string) ([]models.Annotation, error)
	GetAnnotationsList() []models.Annotation
	DeleteAnnotations(annotations []models.Annotation, opts models.ChangeInfo) error
	RedrawAnnotation(a models.Annotation)
	SetCurrentUser(name string)
}

// Document is a loaded document.
type Document interface {
	PageCount() int
	// FileData returns the document bytes with opts.Xfdf merged in.
	FileData(ctx context.Context, opts FileDataOptions) ([]byte, error)
}

// UI toggles named elements of the viewer chrome.
type UI interface {
	OpenElements(names ...string)
	CloseElements(names ...string)
}

// Instance is one SDK instance bound to a mounted viewer.
type Instance interface {
	Viewer() DocumentViewer
	Annotations() AnnotationManager
	UI() UI
}
