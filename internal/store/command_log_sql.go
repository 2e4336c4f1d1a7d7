// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// sqlCommandLog keeps commands in the "annotation_commands" table.
// Timestamps are stored as Unix nanoseconds so that both dialects compare
// them exactly.
type sqlCommandLog struct {
	*DB
	logger *logger.Logger
}

// NewSQLCommandLog constructs a [CommandLog] backed by db.
func NewSQLCommandLog(db *DB, logger *logger.Logger) CommandLog {
	return &sqlCommandLog{
		DB:     db,
		logger: logger,
	}
}

func (l *sqlCommandLog) Append(ctx context.Context, documentID string, entry models.CommandEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCommandQuery(l.Builder(), documentID, entry)
	if err != nil {
		log.Err(err).Str("func", "sqlCommandLog.Append").Msg("failed to create query")
		return err
	}

	if _, err = l.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlCommandLog.Append").
			Str("file_id", documentID).
			Msg("failed to insert command")
		return l.mapError(ErrExecutingStatement, err)
	}
	return nil
}

func (l *sqlCommandLog) ListSince(ctx context.Context, documentID string, since time.Time) ([]models.CommandEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommandsSinceQuery(l.Builder(), documentID, since)
	if err != nil {
		log.Err(err).Str("func", "sqlCommandLog.ListSince").Msg("failed to create query")
		return nil, err
	}

	rows, err := l.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCommandLog.ListSince").
			Str("file_id", documentID).
			Msg("failed to execute query for listing commands")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CommandEntry, 0)
	for rows.Next() {
		var (
			entry models.CommandEntry
			nanos int64
		)
		if err = rows.Scan(&entry.Command, &nanos); err != nil {
			log.Err(err).Str("func", "sqlCommandLog.ListSince").Msg("failed to scan command row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entry.Timestamp = time.Unix(0, nanos).UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqlCommandLog.ListSince").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return entries, nil
}
