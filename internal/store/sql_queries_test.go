// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

func Test_buildInsertDocumentQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := models.FileInfo{ID: "F1", Name: "a.pdf", Content: []byte("%PDF"), Xfdf: "<xfdf/>", CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name        string
		dialect     Dialect
		placeholder string
	}{
		{name: "postgres uses dollar placeholders", dialect: DialectPostgres, placeholder: "$6"},
		{name: "sqlite uses question marks", dialect: DialectSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertDocumentQuery(statementBuilder(tt.dialect), doc)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "INSERT INTO documents"))
			assert.Contains(t, query, "(id,name,content,xfdf,created_at,updated_at)")
			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{"F1", "a.pdf", []byte("%PDF"), "<xfdf/>", now, now}, args)
		})
	}
}

func Test_buildSelectDocumentQuery(t *testing.T) {
	tests := []struct {
		name        string
		withContent bool
		wantContent bool
	}{
		{name: "metadata only", withContent: false},
		{name: "with content", withContent: true, wantContent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectDocumentQuery(statementBuilder(DialectPostgres), "F1", tt.withContent)
			require.NoError(t, err)

			assert.Contains(t, query, "SELECT id, name, xfdf, created_at, updated_at")
			assert.Contains(t, query, "FROM documents WHERE id = $1")
			assert.Equal(t, tt.wantContent, strings.Contains(query, "content"))
			assert.Equal(t, []any{"F1"}, args)
		})
	}
}

func Test_buildSelectDocumentQuery_DoesNotAliasColumns(t *testing.T) {
	_, _, err := buildSelectDocumentQuery(statementBuilder(DialectSQLite), "F1", true)
	require.NoError(t, err)

	assert.Len(t, documentColumns, 5)
}

func Test_buildUpdateDocumentQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildUpdateDocumentQuery(statementBuilder(DialectPostgres), "F1", "xfdf", "<xfdf/>", now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE documents SET xfdf = $1, updated_at = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"<xfdf/>", now, "F1"}, args)
}

func Test_buildInsertCommandQuery(t *testing.T) {
	ts := time.Unix(0, 1_700_000_000_123_456_789)

	query, args, err := buildInsertCommandQuery(statementBuilder(DialectSQLite), "F1", models.CommandEntry{Command: "<cmd/>", Timestamp: ts})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO annotation_commands (document_id,command,created_at) VALUES (?,?,?)", query)
	assert.Equal(t, []any{"F1", "<cmd/>", int64(1_700_000_000_123_456_789)}, args)
}

func Test_buildSelectCommandsSinceQuery(t *testing.T) {
	tests := []struct {
		name      string
		since     time.Time
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "from the beginning",
			wantQuery: "SELECT command, created_at FROM annotation_commands WHERE (document_id = $1) ORDER BY created_at, id",
			wantArgs:  []any{"F1"},
		},
		{
			name:      "since cursor",
			since:     time.Unix(0, 42),
			wantQuery: "SELECT command, created_at FROM annotation_commands WHERE (document_id = $1 AND created_at > $2) ORDER BY created_at, id",
			wantArgs:  []any{"F1", int64(42)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectCommandsSinceQuery(statementBuilder(DialectPostgres), "F1", tt.since)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
