// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . DocumentService,AppInfoService

// DocumentService is the server side of the document store module.
type DocumentService interface {
	// CreateDocument stores content under a newly generated id.
	CreateDocument(ctx context.Context, name string, content []byte) (models.FileInfo, error)
	// GetDocument returns the metadata and the current XFDF snapshot.
	GetDocument(ctx context.Context, id string) (models.FileInfo, error)
	// GetContent returns the raw document bytes.
	GetContent(ctx context.Context, id string) ([]byte, error)
	// UpdateContent replaces the document bytes.
	UpdateContent(ctx context.Context, id string, content []byte) error
	// UpdateXfdf replaces the stored annotation snapshot. The command log is
	// left untouched.
	UpdateXfdf(ctx context.Context, id string, xfdf string) error

	// AppendCommand records an XFDF delta and folds it into the stored
	// snapshot. Timestamps of one document's commands strictly increase.
	AppendCommand(ctx context.Context, id string, command string) (models.CommandEntry, error)
	// ListCommandsSince returns the commands accepted strictly after since,
	// oldest first.
	ListCommandsSince(ctx context.Context, id string, since time.Time) ([]models.CommandEntry, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}
