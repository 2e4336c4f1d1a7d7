// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/service"
	"github.com/MKhiriev/go-webviewer-sync/internal/utils"
	"github.com/MKhiriev/go-webviewer-sync/internal/validators"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// maxBodySize bounds request bodies a little above the largest document the
// validators accept, so oversized uploads are reported as invalid data.
const maxBodySize = validators.MaxContentSize + 1

// createDocument stores the raw request body as a new document and answers
// 201 with the new id as plain text. An optional name query parameter is
// kept as the document name.
func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	content, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err, "failed to read document body")
		return
	}

	doc, err := h.services.DocumentService.CreateDocument(r.Context(), r.URL.Query().Get(nameParam), content)
	if err != nil {
		writeError(w, r, err, "failed to create document")
		return
	}

	w.Header().Set("Location", documentsPath+"/"+doc.ID)
	utils.WriteText(w, doc.ID, http.StatusCreated)
}

// getDocument answers the document metadata with its XFDF snapshot.
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.DocumentService.GetDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "failed to get document")
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

// getDocumentContent answers the raw document bytes. The path doubles as
// the viewer's file URL.
func (h *Handler) getDocumentContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.services.DocumentService.GetContent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "failed to get document content")
		return
	}

	utils.WriteBytes(w, utils.ContentTypePDF, content, http.StatusOK)
}

// updateDocument replaces the document bytes with the raw request body.
func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	content, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err, "failed to read document body")
		return
	}

	if err = h.services.DocumentService.UpdateContent(r.Context(), chi.URLParam(r, "id"), content); err != nil {
		writeError(w, r, err, "failed to update document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updateXfdf replaces the stored annotation snapshot with the raw request
// body. An empty body clears it.
func (h *Handler) updateXfdf(w http.ResponseWriter, r *http.Request) {
	snapshot, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err, "failed to read xfdf body")
		return
	}

	if err = h.services.DocumentService.UpdateXfdf(r.Context(), chi.URLParam(r, "id"), string(snapshot)); err != nil {
		writeError(w, r, err, "failed to update xfdf")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// appendCommand records one XFDF delta and answers 201 with the stored
// entry.
func (h *Handler) appendCommand(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CommandRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	entry, err := h.services.DocumentService.AppendCommand(r.Context(), chi.URLParam(r, "id"), req.Command)
	if err != nil {
		writeError(w, r, err, "failed to append command")
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

// listCommands answers the commands accepted strictly after the since query
// parameter. A missing since selects the whole log.
func (h *Handler) listCommands(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if raw := r.URL.Query().Get(sinceParam); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidSince, err), "failed to parse since")
			return
		}
		since = parsed
	}

	entries, err := h.services.DocumentService.ListCommandsSince(r.Context(), chi.URLParam(r, "id"), since)
	if err != nil {
		writeError(w, r, err, "failed to list commands")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return body, nil
}
