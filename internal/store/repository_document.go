// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// documentRepository is the SQL implementation of [DocumentRepository] over
// the "documents" table.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *documentRepository) Create(ctx context.Context, doc models.FileInfo) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(r.Builder(), doc)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Create").Msg("failed to create query")
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Create").
			Str("file_id", doc.ID).
			Msg("failed to insert document")
		return r.mapError(ErrExecutingStatement, err)
	}
	return nil
}

func (r *documentRepository) Get(ctx context.Context, id string, withContent bool) (models.FileInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(r.Builder(), id, withContent)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Get").Msg("failed to create query")
		return models.FileInfo{}, err
	}

	var (
		doc  models.FileInfo
		name sql.NullString
		xfdf sql.NullString
	)
	dest := []any{&doc.ID, &name, &xfdf, &doc.CreatedAt, &doc.UpdatedAt}
	if withContent {
		dest = append(dest, &doc.Content)
	}

	err = r.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FileInfo{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Get").
			Str("file_id", id).
			Msg("failed to scan document row")
		return models.FileInfo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	doc.Name = name.String
	doc.Xfdf = xfdf.String
	return doc, nil
}

func (r *documentRepository) UpdateContent(ctx context.Context, id string, content []byte, updatedAt time.Time) error {
	return r.update(ctx, "documentRepository.UpdateContent", id, "content", content, updatedAt)
}

func (r *documentRepository) UpdateXfdf(ctx context.Context, id string, xfdf string, updatedAt time.Time) error {
	return r.update(ctx, "documentRepository.UpdateXfdf", id, "xfdf", xfdf, updatedAt)
}

func (r *documentRepository) update(ctx context.Context, fn, id, column string, value any, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDocumentQuery(r.Builder(), id, column, value, updatedAt)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("file_id", id).Msg("failed to update document")
		return r.mapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// mapError returns the constraint sentinel for err when there is one and
// wraps err with kind otherwise.
func (db *DB) mapError(kind, err error) error {
	if db.errorClassificator != nil {
		if mapped := db.errorClassificator.Constraint(err); mapped != nil {
			return mapped
		}
	}
	return fmt.Errorf("%w: %w", kind, err)
}
