// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/annotation"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/identity"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
)

// ClientSaveDeps are the collaborators of a save service.
type ClientSaveDeps struct {
	Viewer      webviewer.DocumentViewer
	UI          webviewer.UI
	Annotations *annotation.Adapter
	Store       adapter.DocumentStore
	Tracker     *identity.Tracker
}

type clientSaveService struct {
	floor       time.Duration
	viewer      webviewer.DocumentViewer
	ui          webviewer.UI
	annotations *annotation.Adapter
	store       adapter.DocumentStore
	tracker     *identity.Tracker

	// after is time.After; replaced in tests.
	after func(time.Duration) <-chan time.Time

	logger *logger.Logger
}

// NewClientSaveService returns the save orchestrator of one viewer.
func NewClientSaveService(cfg config.ClientViewer, deps ClientSaveDeps, log *logger.Logger) ClientSaveService {
	return &clientSaveService{
		floor:       cfg.SaveIndicatorFloor,
		viewer:      deps.Viewer,
		ui:          deps.UI,
		annotations: deps.Annotations,
		store:       deps.Store,
		tracker:     deps.Tracker,
		after:       time.After,
		logger:      log,
	}
}

func (s *clientSaveService) SaveCurrent(ctx context.Context) error {
	fileID, ok := s.tracker.Current()
	if !ok {
		s.logger.Warn().Msg("no file bound, save skipped")
		return nil
	}

	data, err := s.fileData(ctx)
	if err != nil {
		return err
	}

	err = s.withBusyIndicator(ctx, func() error {
		return s.store.UpdateFile(ctx, fileID, data)
	})
	if err != nil {
		s.logger.ForFile(fileID).Error().Err(err).Msg("save failed")
		return fmt.Errorf("error saving file: %w", err)
	}

	s.logger.ForFile(fileID).Info().Msg("file saved")
	return nil
}

func (s *clientSaveService) SaveAs(ctx context.Context) (string, error) {
	generation := s.tracker.DocumentGeneration()

	data, err := s.fileData(ctx)
	if err != nil {
		return "", err
	}

	var newID string
	err = s.withBusyIndicator(ctx, func() error {
		var createErr error
		newID, createErr = s.store.CreateFile(ctx, data)
		return createErr
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("save as failed")
		return "", fmt.Errorf("error creating file: %w", err)
	}

	if s.tracker.DocumentGeneration() != generation {
		s.logger.ForFile(newID).Warn().Msg("document replaced while saving, viewer not rebound")
		return newID, ErrDocumentReplaced
	}

	s.tracker.OnSaveCompleted(newID)
	s.logger.ForFile(newID).Info().Msg("file saved as new document")
	return newID, nil
}

// fileData serializes the loaded document with its annotations embedded.
func (s *clientSaveService) fileData(ctx context.Context) ([]byte, error) {
	if !s.viewer.IsDocumentLoaded() {
		return nil, ErrNoDocument
	}
	doc := s.viewer.Document()
	if doc == nil {
		return nil, ErrNoDocument
	}

	snapshot, err := s.annotations.ExportSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	data, err := doc.FileData(ctx, webviewer.FileDataOptions{Xfdf: snapshot})
	if err != nil {
		if errors.Is(err, webviewer.ErrNoDocument) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("error getting file data: %w", err)
	}
	return data, nil
}

// withBusyIndicator shows the loading modal for at least the floor duration
// and at most until both fn and the floor have completed.
func (s *clientSaveService) withBusyIndicator(ctx context.Context, fn func() error) error {
	s.ui.OpenElements(webviewer.LoadingModal)
	defer s.ui.CloseElements(webviewer.LoadingModal)

	floor := s.after(s.floor)
	err := fn()

	select {
	case <-floor:
	case <-ctx.Done():
	}
	return err
}
