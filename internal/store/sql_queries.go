// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

const (
	documentsTable = "documents"
	commandsTable  = "annotation_commands"
)

var documentColumns = []string{"id", "name", "xfdf", "created_at", "updated_at"}

func buildInsertDocumentQuery(b sq.StatementBuilderType, doc models.FileInfo) (string, []any, error) {
	query, args, err := b.
		Insert(documentsTable).
		Columns("id", "name", "content", "xfdf", "created_at", "updated_at").
		Values(doc.ID, doc.Name, doc.Content, doc.Xfdf, doc.CreatedAt, doc.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectDocumentQuery(b sq.StatementBuilderType, id string, withContent bool) (string, []any, error) {
	columns := documentColumns
	if withContent {
		columns = append(append([]string(nil), documentColumns...), "content")
	}

	query, args, err := b.
		Select(columns...).
		From(documentsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateDocumentQuery(b sq.StatementBuilderType, id string, column string, value any, updatedAt time.Time) (string, []any, error) {
	query, args, err := b.
		Update(documentsTable).
		Set(column, value).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertCommandQuery(b sq.StatementBuilderType, documentID string, entry models.CommandEntry) (string, []any, error) {
	query, args, err := b.
		Insert(commandsTable).
		Columns("document_id", "command", "created_at").
		Values(documentID, entry.Command, entry.Timestamp.UnixNano()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCommandsSinceQuery orders by the insertion id as a tie breaker
// for equal timestamps.
func buildSelectCommandsSinceQuery(b sq.StatementBuilderType, documentID string, since time.Time) (string, []any, error) {
	where := sq.And{sq.Eq{"document_id": documentID}}
	if !since.IsZero() {
		where = append(where, sq.Gt{"created_at": since.UnixNano()})
	}

	query, args, err := b.
		Select("command", "created_at").
		From(commandsTable).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
