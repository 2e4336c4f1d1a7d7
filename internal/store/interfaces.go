// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository persists documents with their XFDF snapshot.
type DocumentRepository interface {
	// Create stores doc including its content. doc.ID must be set.
	Create(ctx context.Context, doc models.FileInfo) error
	// Get returns the document metadata and snapshot. Content is filled
	// only when withContent is true.
	Get(ctx context.Context, id string, withContent bool) (models.FileInfo, error)
	// UpdateContent replaces the document bytes.
	UpdateContent(ctx context.Context, id string, content []byte, updatedAt time.Time) error
	// UpdateXfdf replaces the annotation snapshot.
	UpdateXfdf(ctx context.Context, id string, xfdf string, updatedAt time.Time) error
}

// CommandLog is the append-only annotation command log of every document.
type CommandLog interface {
	// Append stores entry for the document.
	Append(ctx context.Context, documentID string, entry models.CommandEntry) error
	// ListSince returns the entries with a timestamp strictly after since,
	// oldest first.
	ListSince(ctx context.Context, documentID string, since time.Time) ([]models.CommandEntry, error)
}
