// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-webviewer-sync/internal/adapter"
	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/utils"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer/memory"
)

// newSourceLoader returns a document loader that downloads http(s) sources
// with the session's CSRF token and reads anything else from disk.
func newSourceLoader(adapterCfg config.ClientAdapter, session binding.Session) memory.Loader {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, adapter.CSRFHeader, session.CSRFToken)

	return func(ctx context.Context, source string) ([]byte, error) {
		if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
			return memory.FileLoader(ctx, source)
		}

		resp, err := client.R().SetContext(ctx).Get(source)
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", source, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("download %s: http %d", source, resp.StatusCode())
		}
		return resp.Body(), nil
	}
}

// contentURL is the document store address of a document's bytes.
func contentURL(baseURL, fileID string) string {
	baseURL = strings.TrimSpace(baseURL)
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return strings.TrimRight(baseURL, "/") + adapter.DocumentsPath + "/" + fileID + "/content"
}
