// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-webviewer-sync/internal/binding"
	"github.com/MKhiriev/go-webviewer-sync/internal/config"
	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/utils"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// Endpoints of the document store module.
const (
	ModuleVersionPath = "/rest/version/v1/modules/webviewer"
	DocumentsPath     = "/rest/documentstore/v1/documents"
	DocumentPath      = DocumentsPath + "/{id}"
	CommandsPath      = DocumentPath + "/commands"
	XfdfPath          = DocumentPath + "/xfdf"

	// CSRFHeader carries the session's forgery-protection token.
	CSRFHeader = "X-Csrf-Token"
	// SinceParam is the query parameter of ListCommandsSince.
	SinceParam = "since"
)

type httpDocumentStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDocumentStore constructs the HTTP implementation of [DocumentStore].
// It normalises adapterCfg.HTTPAddress into the base URL and applies the
// request timeout. The CSRF token is read from session on every request; a
// nil session falls back to adapterCfg.CSRFToken.
//
// Returns an error if adapterCfg.HTTPAddress is empty or not a valid URL.
func NewHTTPDocumentStore(adapterCfg config.ClientAdapter, session binding.Session, logger *logger.Logger) (DocumentStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if session == nil {
		session = binding.StaticSession(adapterCfg.CSRFToken)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, CSRFHeader, session.CSRFToken)
	client.SetBaseURL(baseURL)

	return &httpDocumentStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CheckAvailability implements [DocumentStore] with
// GET /rest/version/v1/modules/webviewer.
func (h *httpDocumentStore) CheckAvailability(ctx context.Context) bool {
	resp, err := h.request(ctx).Get(ModuleVersionPath)
	if err == nil {
		err = mapHTTPError(resp)
	}
	if err != nil {
		h.logger.Info().Err(err).Msg("module not detected")
		return false
	}

	h.logger.Info().
		Str("body", strings.TrimSpace(string(resp.Body()))).
		Msg("module connected")
	return true
}

// FetchFileInfo implements [DocumentStore] with
// GET /rest/documentstore/v1/documents/{id}.
func (h *httpDocumentStore) FetchFileInfo(ctx context.Context, fileID string) (models.FileInfo, error) {
	if fileID == "" {
		return models.FileInfo{}, fmt.Errorf("%w: %w: empty file id", ErrTransport, ErrNotFound)
	}

	var info models.FileInfo
	resp, err := h.request(ctx).
		SetPathParam("id", fileID).
		SetResult(&info).
		Get(DocumentPath)
	if err != nil {
		return models.FileInfo{}, wrapRequestError("fetch file info", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileInfo{}, err
	}

	return info, nil
}

// UpdateFile implements [DocumentStore] with
// PUT /rest/documentstore/v1/documents/{id} and raw bytes.
func (h *httpDocumentStore) UpdateFile(ctx context.Context, fileID string, data []byte) error {
	if fileID == "" {
		h.logger.Warn().Msg("update file skipped: empty file id")
		return nil
	}

	resp, err := h.request(ctx).
		SetPathParam("id", fileID).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Put(DocumentPath)
	if err != nil {
		return wrapRequestError("update file", err)
	}

	return mapHTTPError(resp)
}

// UpdateXfdf implements [DocumentStore] with
// PUT /rest/documentstore/v1/documents/{id}/xfdf and the snapshot as XML.
func (h *httpDocumentStore) UpdateXfdf(ctx context.Context, fileID string, xfdf string) error {
	if fileID == "" {
		h.logger.Warn().Msg("update xfdf skipped: empty file id")
		return nil
	}

	resp, err := h.request(ctx).
		SetPathParam("id", fileID).
		SetHeader("Content-Type", "application/xml").
		SetBody(xfdf).
		Put(XfdfPath)
	if err != nil {
		return wrapRequestError("update xfdf", err)
	}

	return mapHTTPError(resp)
}

// CreateFile implements [DocumentStore] with
// POST /rest/documentstore/v1/documents and raw bytes. The response body is
// the new id as plain text.
func (h *httpDocumentStore) CreateFile(ctx context.Context, data []byte) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Post(DocumentsPath)
	if err != nil {
		return "", wrapRequestError("create file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	id := strings.TrimSpace(string(resp.Body()))
	if id == "" {
		return "", fmt.Errorf("%w: create file: empty id in response", ErrTransport)
	}
	return id, nil
}

// AppendCommand implements [DocumentStore] with
// POST /rest/documentstore/v1/documents/{id}/commands.
func (h *httpDocumentStore) AppendCommand(ctx context.Context, fileID string, command string) error {
	if fileID == "" {
		h.logger.Warn().Msg("append command skipped: empty file id")
		return nil
	}

	resp, err := h.request(ctx).
		SetPathParam("id", fileID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CommandRequest{Command: command}).
		Post(CommandsPath)
	if err != nil {
		return wrapRequestError("append command", err)
	}

	return mapHTTPError(resp)
}

// ListCommandsSince implements [DocumentStore] with
// GET /rest/documentstore/v1/documents/{id}/commands?since=<RFC 3339>.
func (h *httpDocumentStore) ListCommandsSince(ctx context.Context, fileID string, since time.Time) ([]models.CommandEntry, error) {
	if fileID == "" {
		return []models.CommandEntry{}, nil
	}

	var entries []models.CommandEntry
	resp, err := h.request(ctx).
		SetPathParam("id", fileID).
		SetQueryParam(SinceParam, since.UTC().Format(time.RFC3339Nano)).
		SetResult(&entries).
		Get(CommandsPath)
	if err != nil {
		return nil, wrapRequestError("list commands", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.CommandEntry{}
	}
	return entries, nil
}

func (h *httpDocumentStore) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
