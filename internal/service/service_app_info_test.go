// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	handler "github.com/MKhiriev/go-webviewer-sync/internal/handler/http"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/service"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "release", version: "1.4.0"},
		{name: "build metadata", version: "v1.4.0-rc.1+sync.7"},
		{name: "missing version", version: "", wantErr: service.ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := service.NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

// The availability check runs before a session exists, so it must answer
// without a CSRF token.
func TestAppInfoService_AnswersAvailabilityCheckWithoutCSRF(t *testing.T) {
	svc, err := service.NewAppInfoService(config.App{Version: "1.4.0"}, logger.Nop())
	require.NoError(t, err)
	router := handler.NewHandler(&service.Services{AppInfoService: svc}, "session-token", logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, adapter.ModuleVersionPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.4.0", rec.Body.String())
}

func TestAppInfoService_VersionReachesViewerAdapter(t *testing.T) {
	svc, err := service.NewAppInfoService(config.App{Version: "1.4.0"}, logger.Nop())
	require.NoError(t, err)
	srv := httptest.NewServer(handler.NewHandler(&service.Services{AppInfoService: svc}, "session-token", logger.Nop()).Init())
	defer srv.Close()

	var buf bytes.Buffer
	store, err := adapter.NewHTTPDocumentStore(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second},
		nil,
		&logger.Logger{Logger: zerolog.New(&buf)},
	)
	require.NoError(t, err)

	assert.True(t, store.CheckAvailability(context.Background()))
	assert.Contains(t, buf.String(), `"body":"1.4.0"`)
}
