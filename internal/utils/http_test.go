// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: map[string]string{"id": "F1"}, status: http.StatusOK, wantBody: `{"id":"F1"}`},
		{name: "empty list", data: []string{}, status: http.StatusOK, wantBody: `[]`},
		{name: "nil", data: nil, status: http.StatusCreated, wantBody: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteText(w, "1.0.0", http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, ContentTypeText, w.Header().Get("Content-Type"))
	assert.Equal(t, "1.0.0", w.Body.String())
}

func TestWriteBytes(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteBytes(w, ContentTypePDF, []byte("%PDF-1.7"), http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, ContentTypePDF, w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7", w.Body.String())
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
	assert.Less(t, first, second)
}
