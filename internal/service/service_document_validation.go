// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/internal/validators"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// DocumentValidationService rejects malformed input before it reaches the
// wrapped DocumentService. Every rejection wraps [ErrInvalidDataProvided].
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) CreateDocument(ctx context.Context, name string, content []byte) (models.FileInfo, error) {
	doc := models.FileInfo{Name: name, Content: content}
	if err := v.validate(ctx, doc, validators.FieldName, validators.FieldContent); err != nil {
		return models.FileInfo{}, err
	}

	return v.inner.CreateDocument(ctx, name, content)
}

func (v *DocumentValidationService) GetDocument(ctx context.Context, id string) (models.FileInfo, error) {
	if err := v.validate(ctx, models.FileInfo{ID: id}, validators.FieldID); err != nil {
		return models.FileInfo{}, err
	}

	return v.inner.GetDocument(ctx, id)
}

func (v *DocumentValidationService) GetContent(ctx context.Context, id string) ([]byte, error) {
	if err := v.validate(ctx, models.FileInfo{ID: id}, validators.FieldID); err != nil {
		return nil, err
	}

	return v.inner.GetContent(ctx, id)
}

func (v *DocumentValidationService) UpdateContent(ctx context.Context, id string, content []byte) error {
	if err := v.validate(ctx, models.FileInfo{ID: id, Content: content}, validators.FieldID, validators.FieldContent); err != nil {
		return err
	}

	return v.inner.UpdateContent(ctx, id, content)
}

func (v *DocumentValidationService) UpdateXfdf(ctx context.Context, id string, xfdf string) error {
	if err := v.validate(ctx, models.FileInfo{ID: id, Xfdf: xfdf}, validators.FieldID, validators.FieldXfdf); err != nil {
		return err
	}

	return v.inner.UpdateXfdf(ctx, id, xfdf)
}

func (v *DocumentValidationService) AppendCommand(ctx context.Context, id string, command string) (models.CommandEntry, error) {
	if err := v.validate(ctx, models.FileInfo{ID: id}, validators.FieldID); err != nil {
		return models.CommandEntry{}, err
	}
	if err := v.validate(ctx, models.CommandRequest{Command: command}); err != nil {
		return models.CommandEntry{}, err
	}

	return v.inner.AppendCommand(ctx, id, command)
}

func (v *DocumentValidationService) ListCommandsSince(ctx context.Context, id string, since time.Time) ([]models.CommandEntry, error) {
	if err := v.validate(ctx, models.CommandsQuery{DocumentID: id, Since: since}); err != nil {
		return nil, err
	}

	return v.inner.ListCommandsSince(ctx, id, since)
}

func (v *DocumentValidationService) Wrap(inner DocumentService) DocumentService {
	v.inner = inner
	return v
}

func (v *DocumentValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
