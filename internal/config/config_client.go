// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Default viewer timings.
const (
	DefaultExportDebounce     = time.Second
	DefaultPollInterval       = time.Second
	DefaultSaveIndicatorFloor = 3 * time.Second
	DefaultMaxPendingCommands = 256
	DefaultRequestTimeout     = 15 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the document store base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// CSRFToken is sent in the X-Csrf-Token header.
	CSRFToken string
}

// ClientViewer contains the properties of one mounted viewer.
type ClientViewer struct {
	FileURL        string
	FileID         string
	AnnotationUser string

	EnableAutoXfdfExport   bool
	EnableAutoXfdfImport   bool
	EnableXfdfExportButton bool
	EnableRealtimeSync     bool
	EnableSnapshotPolling  bool
	EnableDocumentUpdates  bool
	EnableSaveAs           bool

	ExportDebounce     time.Duration
	PollInterval       time.Duration
	SaveIndicatorFloor time.Duration
	MaxPendingCommands int
}

// WithDefaults returns a copy of v with zero timings replaced by the
// package defaults.
func (v ClientViewer) WithDefaults() ClientViewer {
	if v.ExportDebounce <= 0 {
		v.ExportDebounce = DefaultExportDebounce
	}
	if v.PollInterval <= 0 {
		v.PollInterval = DefaultPollInterval
	}
	if v.SaveIndicatorFloor <= 0 {
		v.SaveIndicatorFloor = DefaultSaveIndicatorFloor
	}
	if v.MaxPendingCommands <= 0 {
		v.MaxPendingCommands = DefaultMaxPendingCommands
	}
	return v
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the document store address, timeout and token.
	Adapter ClientAdapter
	// Viewer contains the widget properties.
	Viewer ClientViewer
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	timeout := cfg.Adapter.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	v := cfg.Viewer
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: timeout,
			CSRFToken:      cfg.Adapter.CSRFToken,
		},
		Viewer: ClientViewer{
			FileURL:                v.FileURL,
			FileID:                 v.FileID,
			AnnotationUser:         v.AnnotationUser,
			EnableAutoXfdfExport:   v.EnableAutoXfdfExport,
			EnableAutoXfdfImport:   v.EnableAutoXfdfImport,
			EnableXfdfExportButton: v.EnableXfdfExportButton,
			EnableRealtimeSync:     v.EnableRealtimeSync,
			EnableSnapshotPolling:  v.EnableSnapshotPolling,
			EnableDocumentUpdates:  v.EnableDocumentUpdates,
			EnableSaveAs:           v.EnableSaveAs,
			ExportDebounce:         v.ExportDebounce,
			PollInterval:           v.PollInterval,
			SaveIndicatorFloor:     v.SaveIndicatorFloor,
			MaxPendingCommands:     v.MaxPendingCommands,
		}.WithDefaults(),
	}

	return clientCfg, clientCfg.validate()
}
