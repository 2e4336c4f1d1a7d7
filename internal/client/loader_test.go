// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
)

func Test_contentURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "full url", baseURL: "http://store:8080", want: "http://store:8080/rest/documentstore/v1/documents/F1/content"},
		{name: "trailing slash", baseURL: "https://store/", want: "https://store/rest/documentstore/v1/documents/F1/content"},
		{name: "bare address", baseURL: " localhost:8080 ", want: "http://localhost:8080/rest/documentstore/v1/documents/F1/content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentURL(tt.baseURL, "F1"))
		})
	}
}

func TestSourceLoader_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(adapter.CSRFHeader) != testCSRF {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(testPDF))
	}))
	defer srv.Close()

	cfg := config.ClientAdapter{RequestTimeout: time.Second}

	data, err := newSourceLoader(cfg, binding.StaticSession(testCSRF))(context.Background(), srv.URL+"/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, testPDF, string(data))

	_, err = newSourceLoader(cfg, binding.StaticSession(""))(context.Background(), srv.URL+"/doc.pdf")
	assert.ErrorContains(t, err, "http 403")
}

func TestSourceLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte(testPDF), 0o600))

	data, err := newSourceLoader(config.ClientAdapter{}, binding.StaticSession(""))(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, testPDF, string(data))
}
