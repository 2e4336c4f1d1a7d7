// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/annotation"
	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/identity"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/internal/workers"
)

// ClientServices groups the services of one mounted viewer.
type ClientServices struct {
	Annotations *annotation.Adapter
	SyncEngine  ClientSyncEngine
	SaveService ClientSaveService
}

// NewClientServices wires the sync engine and the save service over a
// single SDK instance, store and identity tracker. xfdfAttr may be nil.
func NewClientServices(
	cfg config.ClientViewer,
	instance webviewer.Instance,
	store adapter.DocumentStore,
	tracker *identity.Tracker,
	xfdfAttr binding.EditableValue,
	scheduler workers.Scheduler,
	log *logger.Logger,
) *ClientServices {
	annotations := annotation.NewAdapter(instance.Annotations(), log)

	return &ClientServices{
		Annotations: annotations,
		SyncEngine: NewClientSyncEngine(cfg, ClientSyncDeps{
			Viewer:        instance.Viewer(),
			Annotations:   annotations,
			Store:         store,
			Tracker:       tracker,
			XfdfAttribute: xfdfAttr,
			Scheduler:     scheduler,
		}, log),
		SaveService: NewClientSaveService(cfg, ClientSaveDeps{
			Viewer:      instance.Viewer(),
			UI:          instance.UI(),
			Annotations: annotations,
			Store:       store,
			Tracker:     tracker,
		}, log),
	}
}
