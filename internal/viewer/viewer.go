// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package viewer mounts one document viewer: it wires the SDK instance,
// the platform attributes, the identity tracker and the client services
// together and tears all of it down again on Unmount.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/identity"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/service"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/internal/workers"
)

var (
	ErrAlreadyMounted = errors.New("viewer already mounted")
	ErrNotMounted     = errors.New("viewer not mounted")
	ErrSaveDisabled   = errors.New("document updates are disabled")
	ErrSaveAsDisabled = errors.New("save as is disabled")
	ErrExportDisabled = errors.New("xfdf export button is disabled")
)

// Attributes are the platform values bound to the viewer. Any of them may
// be nil.
type Attributes struct {
	// FileID is the externally managed document id.
	FileID binding.Value
	// FileURL overrides the configured document URL when set.
	FileURL binding.Value
	// Xfdf receives the annotation snapshot and feeds auto import.
	Xfdf binding.EditableValue
}

// Viewer is one mounted viewer widget.
type Viewer struct {
	cfg       config.ClientViewer
	instance  webviewer.Instance
	store     adapter.DocumentStore
	attrs     Attributes
	scheduler workers.Scheduler
	logger    *logger.Logger

	tracker  *identity.Tracker
	services *service.ClientServices

	mu          sync.Mutex
	mounted     bool
	saveEnabled bool
	saveAs      bool
	teardown    workers.Workers
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithScheduler replaces the timer based scheduler of the export debounce.
func WithScheduler(s workers.Scheduler) Option {
	return func(v *Viewer) {
		v.scheduler = s
	}
}

// New returns an unmounted viewer over instance and store.
func New(cfg config.ClientViewer, instance webviewer.Instance, store adapter.DocumentStore, attrs Attributes, log *logger.Logger, opts ...Option) *Viewer {
	v := &Viewer{
		cfg:      cfg.WithDefaults(),
		instance: instance,
		store:    store,
		attrs:    attrs,
		logger:   log,
		tracker:  identity.NewTracker(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount wires the viewer and loads the initial document. Mount is not
// reentrant; a second call fails with ErrAlreadyMounted until Unmount.
func (v *Viewer) Mount(ctx context.Context) error {
	v.mu.Lock()
	err := v.mountLocked(ctx)
	v.mu.Unlock()
	if err != nil {
		return err
	}

	// loading fires documentLoaded synchronously, so v.mu must be free here
	source := v.documentSource()
	if source == "" {
		v.logger.Debug().Msg("no document source, waiting for a load")
		return nil
	}
	if err = v.instance.Viewer().LoadDocument(ctx, source); err != nil {
		return fmt.Errorf("error loading initial document: %w", err)
	}
	return nil
}

func (v *Viewer) mountLocked(ctx context.Context) error {
	if v.mounted {
		return ErrAlreadyMounted
	}

	runCtx, cancel := context.WithCancel(context.Background())
	v.teardown.Add(workers.StopFunc(cancel))

	annotations := v.instance.Annotations()
	dv := v.instance.Viewer()
	if v.cfg.AnnotationUser != "" {
		annotations.SetCurrentUser(v.cfg.AnnotationUser)
	}

	v.services = service.NewClientServices(v.cfg, v.instance, v.store, v.tracker, v.attrs.Xfdf, v.scheduler, v.logger)
	engine := v.services.SyncEngine
	v.teardown.Add(workers.StopFunc(engine.Close))

	if v.cfg.EnableDocumentUpdates || v.cfg.EnableSaveAs {
		available := v.store.CheckAvailability(ctx)
		if !available {
			v.logger.Warn().Msg("document store module unavailable, saving disabled")
		}
		v.saveEnabled = available && v.cfg.EnableDocumentUpdates
		v.saveAs = available && v.cfg.EnableSaveAs
	}

	v.subscribe(dv, webviewer.EventDocumentLoaded, func(webviewer.Event) {
		before, _ := v.tracker.Current()
		id, available := v.externalID()
		after := v.tracker.OnDocumentLoaded(id, available)
		if after.Current != before {
			engine.OnFileChanged()
		}
	})
	v.subscribe(dv, webviewer.EventDocumentUnloaded, func(webviewer.Event) {
		v.tracker.OnDocumentUnloaded()
		engine.OnDocumentUnloaded()
	})
	v.subscribe(dv, webviewer.EventAnnotationChanged, func(e webviewer.Event) {
		engine.OnAnnotationChanged(e.Change)
	})

	if v.attrs.FileID != nil {
		id, available := v.externalID()
		v.tracker.OnExternalIDChanged(id, available)

		sub := v.attrs.FileID.Subscribe(func(value string, status binding.Status) {
			before, _ := v.tracker.Current()
			after := v.tracker.OnExternalIDChanged(value, status == binding.Available)
			if after.Current != before {
				v.logger.ForFile(after.Current).Info().Str("previous", before).Msg("file id changed")
				engine.OnFileChanged()
			}
		})
		fileIDAttr := v.attrs.FileID
		v.teardown.Add(workers.StopFunc(func() { fileIDAttr.Unsubscribe(sub) }))
	} else if v.cfg.FileID != "" {
		v.tracker.OnExternalIDChanged(v.cfg.FileID, true)
	}

	if v.attrs.Xfdf != nil && v.attrs.Xfdf.ReadOnly() && v.cfg.EnableAutoXfdfExport {
		v.logger.Warn().Msg("xfdf attribute is read-only, automatic export disabled")
	}

	if v.cfg.EnableAutoXfdfImport {
		if dv.IsDocumentLoaded() {
			if snapshot, ok := engine.RetrieveXfdf(ctx); ok && snapshot != "" {
				if err := v.services.Annotations.ImportSnapshot(ctx, snapshot); err != nil {
					v.logger.Error().Err(err).Msg("initial xfdf import failed")
				}
			}
		} else {
			dv.SetDocumentXFDFRetriever(engine.RetrieveXfdf)
			v.teardown.Add(workers.StopFunc(func() { dv.SetDocumentXFDFRetriever(nil) }))
		}
	}

	engine.StartPolling(runCtx)

	v.mounted = true
	return nil
}

// Unmount tears the viewer down: polling stops, a pending export is
// dropped and every subscription is removed. Safe to call more than once.
func (v *Viewer) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted {
		return
	}
	v.teardown.Stop()
	v.mounted = false
	v.saveEnabled = false
	v.saveAs = false
}

// Save updates the bound document with the loaded content.
func (v *Viewer) Save(ctx context.Context) error {
	svc, err := v.mountedServices()
	if err != nil {
		return err
	}
	if !v.canSave() {
		return ErrSaveDisabled
	}
	return svc.SaveService.SaveCurrent(ctx)
}

// SaveAs stores the loaded content as a new document and binds the viewer
// to it.
func (v *Viewer) SaveAs(ctx context.Context) (string, error) {
	svc, err := v.mountedServices()
	if err != nil {
		return "", err
	}
	if !v.canSaveAs() {
		return "", ErrSaveAsDisabled
	}

	id, err := svc.SaveService.SaveAs(ctx)
	if err != nil {
		return id, err
	}
	svc.SyncEngine.OnFileChanged()
	return id, nil
}

// ExportXfdf is the manual "Save XFDF" button.
func (v *Viewer) ExportXfdf(ctx context.Context) error {
	svc, err := v.mountedServices()
	if err != nil {
		return err
	}
	if !v.cfg.EnableXfdfExportButton {
		return ErrExportDisabled
	}
	return svc.SyncEngine.ExportXfdf(ctx)
}

// State reports whether the viewer is bound to a remote file.
func (v *Viewer) State() identity.State {
	return v.tracker.State()
}

// Tracker exposes the identity tracker of the viewer.
func (v *Viewer) Tracker() *identity.Tracker {
	return v.tracker
}

// SaveEnabled reports whether the Save button is enabled.
func (v *Viewer) SaveEnabled() bool {
	return v.canSave()
}

// SaveAsEnabled reports whether the Save As button is enabled.
func (v *Viewer) SaveAsEnabled() bool {
	return v.canSaveAs()
}

func (v *Viewer) canSave() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.saveEnabled
}

func (v *Viewer) canSaveAs() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.saveAs
}

func (v *Viewer) mountedServices() (*service.ClientServices, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted {
		return nil, ErrNotMounted
	}
	return v.services, nil
}

// subscribe expects v.mu to be held.
func (v *Viewer) subscribe(dv webviewer.DocumentViewer, name webviewer.EventName, h webviewer.Handler) {
	sub := dv.Subscribe(name, h)
	v.teardown.Add(workers.StopFunc(func() { dv.Unsubscribe(sub) }))
}

func (v *Viewer) externalID() (string, bool) {
	if v.attrs.FileID == nil {
		return v.cfg.FileID, v.cfg.FileID != ""
	}
	return v.attrs.FileID.Value(), binding.IsAvailable(v.attrs.FileID)
}

func (v *Viewer) documentSource() string {
	if binding.IsAvailable(v.attrs.FileURL) && v.attrs.FileURL.Value() != "" {
		return v.attrs.FileURL.Value()
	}
	return v.cfg.FileURL
}
