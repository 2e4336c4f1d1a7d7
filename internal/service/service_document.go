// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/store"
	"github.com/MKhiriev/go-webviewer-sync/internal/utils"
	"github.com/MKhiriev/go-webviewer-sync/internal/xfdf"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

type documentService struct {
	documents store.DocumentRepository
	commands  store.CommandLog
	ids       *utils.UUIDGenerator
	now       func() time.Time

	// mu serializes command appends so that the snapshot fold and the
	// timestamp sequence stay consistent.
	mu     sync.Mutex
	lastTS time.Time

	logger *logger.Logger
}

// NewDocumentService constructs the [DocumentService] backed by documents
// and commands.
func NewDocumentService(documents store.DocumentRepository, commands store.CommandLog, logger *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		commands:  commands,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *documentService) CreateDocument(ctx context.Context, name string, content []byte) (models.FileInfo, error) {
	if len(content) == 0 {
		return models.FileInfo{}, ErrInvalidDataProvided
	}

	now := s.now().UTC()
	doc := models.FileInfo{
		ID:        s.ids.Generate(),
		Name:      name,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return models.FileInfo{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("file_id", doc.ID).
		Int("size", len(content)).
		Msg("document created")

	doc.Content = nil
	return doc, nil
}

func (s *documentService) GetDocument(ctx context.Context, id string) (models.FileInfo, error) {
	doc, err := s.documents.Get(ctx, id, false)
	if err != nil {
		return models.FileInfo{}, mapStoreError(err)
	}
	return doc, nil
}

func (s *documentService) GetContent(ctx context.Context, id string) ([]byte, error) {
	doc, err := s.documents.Get(ctx, id, true)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return doc.Content, nil
}

func (s *documentService) UpdateContent(ctx context.Context, id string, content []byte) error {
	if len(content) == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.documents.UpdateContent(ctx, id, content, s.now().UTC()); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *documentService) UpdateXfdf(ctx context.Context, id string, snapshot string) error {
	if _, err := xfdf.DecodeSnapshot(snapshot); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// shares mu with AppendCommand so a fold never overwrites a newer push
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.documents.UpdateXfdf(ctx, id, snapshot, s.now().UTC()); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).ForFile(id).Debug().Int("size", len(snapshot)).Msg("xfdf snapshot replaced")
	return nil
}

func (s *documentService) AppendCommand(ctx context.Context, id string, command string) (models.CommandEntry, error) {
	log := logger.FromContext(ctx).ForFile(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.documents.Get(ctx, id, false)
	if err != nil {
		return models.CommandEntry{}, mapStoreError(err)
	}

	snapshot, err := xfdf.Apply(doc.Xfdf, command)
	if err != nil {
		log.Err(err).Str("func", "documentService.AppendCommand").Msg("command cannot be applied")
		return models.CommandEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry := models.CommandEntry{Command: command, Timestamp: s.nextTimestamp()}
	if err = s.commands.Append(ctx, id, entry); err != nil {
		return models.CommandEntry{}, mapStoreError(err)
	}
	if err = s.documents.UpdateXfdf(ctx, id, snapshot, entry.Timestamp); err != nil {
		return models.CommandEntry{}, mapStoreError(err)
	}

	log.Debug().Time("timestamp", entry.Timestamp).Msg("command appended")
	return entry, nil
}

func (s *documentService) ListCommandsSince(ctx context.Context, id string, since time.Time) ([]models.CommandEntry, error) {
	if _, err := s.documents.Get(ctx, id, false); err != nil {
		return nil, mapStoreError(err)
	}

	entries, err := s.commands.ListSince(ctx, id, since)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if entries == nil {
		entries = []models.CommandEntry{}
	}
	return entries, nil
}

// nextTimestamp returns the current time, moved one microsecond past the
// previously issued timestamp when the clock did not advance. Callers hold
// s.mu.
func (s *documentService) nextTimestamp() time.Time {
	ts := s.now().UTC()
	if !ts.After(s.lastTS) {
		ts = s.lastTS.Add(time.Microsecond)
	}
	s.lastTS = ts
	return ts
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrDocumentNotFound):
		return fmt.Errorf("%w: %w", ErrDocumentNotFound, err)
	case errors.Is(err, store.ErrDocumentExists):
		return fmt.Errorf("%w: %w", ErrDocumentExists, err)
	default:
		return err
	}
}
