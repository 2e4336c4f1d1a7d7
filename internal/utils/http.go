// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response content types of the document store.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypePDF  = "application/pdf"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, doc, http.StatusOK)
//	WriteJSON(w, []models.CommandEntry{}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteBytes(w, ContentTypeJSON, jsonData, statusCode)
}

// WriteText writes a plain text body such as a document id or a version.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	return WriteBytes(w, ContentTypeText, []byte(text), statusCode)
}

// WriteBytes sets the content type, writes statusCode and then data.
func WriteBytes(w http.ResponseWriter, contentType string, data []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(data)
}
