// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package memory is an in-memory rendering SDK. It keeps the document bytes
// and the annotation layer in process and emits the same events as the
// browser SDK, which makes it suitable for the headless client and tests.
package memory

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// Loader resolves a document source into its bytes.
type Loader func(ctx context.Context, source string) ([]byte, error)

// FileLoader reads a local path, optionally prefixed with "file://".
func FileLoader(_ context.Context, source string) ([]byte, error) {
	return os.ReadFile(strings.TrimPrefix(source, "file://"))
}

// Option configures an Instance.
type Option func(*Instance)

// WithLoader replaces FileLoader.
func WithLoader(l Loader) Option {
	return func(i *Instance) {
		i.loader = l
	}
}

type subscriber struct {
	sub webviewer.Subscription
	h   webviewer.Handler
}

// Instance implements webviewer.Instance. It is safe for concurrent use;
// events are delivered synchronously on the goroutine that caused them,
// after internal locks are released.
type Instance struct {
	mu sync.Mutex

	loader    Loader
	retriever webviewer.XFDFRetriever

	subs    []subscriber
	nextSub uint64

	doc      *document
	source   string
	isLoaded bool
	loaded   chan struct{}

	annotations []models.Annotation
	journal     journal
	user        string
	redrawn     []string

	ui *ui
}

var (
	_ webviewer.Instance          = (*Instance)(nil)
	_ webviewer.DocumentViewer    = (*Instance)(nil)
	_ webviewer.AnnotationManager = (*Instance)(nil)
)

// New creates an SDK instance without a document.
func New(opts ...Option) *Instance {
	i := &Instance{
		loader: FileLoader,
		loaded: make(chan struct{}),
		ui:     newUI(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Instance) Viewer() webviewer.DocumentViewer         { return i }
func (i *Instance) Annotations() webviewer.AnnotationManager { return i }
func (i *Instance) UI() webviewer.UI                         { return i.ui }

// Subscribe registers h for event.
func (i *Instance) Subscribe(event webviewer.EventName, h webviewer.Handler) webviewer.Subscription {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.nextSub++
	s := webviewer.Subscription{ID: i.nextSub, Event: event}
	i.subs = append(i.subs, subscriber{sub: s, h: h})
	return s
}

// Unsubscribe removes the subscription. Unknown tokens are ignored.
func (i *Instance) Unsubscribe(s webviewer.Subscription) {
	i.mu.Lock()
	defer i.mu.Unlock()

	kept := i.subs[:0]
	for _, sub := range i.subs {
		if sub.sub != s {
			kept = append(kept, sub)
		}
	}
	i.subs = kept
}

// Subscribers returns the number of live subscriptions.
func (i *Instance) Subscribers() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.subs)
}

func (i *Instance) emit(e webviewer.Event) {
	i.mu.Lock()
	handlers := make([]webviewer.Handler, 0, len(i.subs))
	for _, sub := range i.subs {
		if sub.sub.Event == e.Name {
			handlers = append(handlers, sub.h)
		}
	}
	i.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

func (i *Instance) emitChange(annotations []models.Annotation, action models.AnnotationAction, info models.ChangeInfo) {
	if len(annotations) == 0 {
		return
	}
	i.emit(webviewer.Event{
		Name: webviewer.EventAnnotationChanged,
		Change: models.AnnotationChange{
			Annotations: annotations,
			Action:      action,
			Info:        info,
		},
	})
}

// SetDocumentXFDFRetriever installs the retriever consulted by LoadDocument.
func (i *Instance) SetDocumentXFDFRetriever(r webviewer.XFDFRetriever) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.retriever = r
}

// LoadDocument replaces the current document. Annotations embedded by a
// previous FileData call are restored first, then the retriever's snapshot
// is imported, then documentLoaded fires.
func (i *Instance) LoadDocument(ctx context.Context, source string) error {
	data, err := i.loader(ctx, source)
	if err != nil {
		return fmt.Errorf("error loading document %q: %w", source, err)
	}

	if err := i.CloseDocument(ctx); err != nil {
		return err
	}

	body, embedded := splitXFDF(data)

	i.mu.Lock()
	i.doc = &document{data: body, pages: countPages(body)}
	i.source = source
	i.annotations = nil
	i.journal.reset()
	retriever := i.retriever
	i.mu.Unlock()

	if embedded != "" {
		if _, err := i.ImportAnnotations(ctx, embedded); err != nil {
			return fmt.Errorf("error restoring embedded annotations: %w", err)
		}
	}

	if retriever != nil {
		if snapshot, ok := retriever(ctx); ok && snapshot != "" {
			if _, err := i.ImportAnnotations(ctx, snapshot); err != nil {
				return fmt.Errorf("error importing retrieved annotations: %w", err)
			}
		}
	}

	i.mu.Lock()
	i.isLoaded = true
	close(i.loaded)
	i.mu.Unlock()

	i.emit(webviewer.Event{Name: webviewer.EventDocumentLoaded})
	return nil
}

// CloseDocument unloads the current document, if any, and fires
// documentUnloaded.
func (i *Instance) CloseDocument(_ context.Context) error {
	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return nil
	}
	i.doc = nil
	i.source = ""
	i.annotations = nil
	i.journal.reset()
	if i.isLoaded {
		i.isLoaded = false
		i.loaded = make(chan struct{})
	}
	i.mu.Unlock()

	i.emit(webviewer.Event{Name: webviewer.EventDocumentUnloaded})
	return nil
}

// Document returns the loaded document or nil.
func (i *Instance) Document() webviewer.Document {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.doc == nil {
		return nil
	}
	return i.doc
}

// Source returns the source of the loaded document.
func (i *Instance) Source() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.source
}

func (i *Instance) IsDocumentLoaded() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.isLoaded
}

func (i *Instance) WaitForDocumentLoaded(ctx context.Context) error {
	i.mu.Lock()
	ch := i.loaded
	i.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsOpen reports whether the named UI element is open.
func (i *Instance) IsOpen(name string) bool {
	return i.ui.IsOpen(name)
}

// UIHistory returns every toggle of the UI elements in order.
func (i *Instance) UIHistory() []UIChange {
	return i.ui.History()
}
