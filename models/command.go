// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CommandEntry is one annotation delta stored in a document's command log.
type CommandEntry struct {
	// Command is the serialized XFDF delta.
	Command string `json:"command"`

	// Timestamp is the time the store accepted the command.
	Timestamp time.Time `json:"timestamp"`
}

// CommandRequest is the body of the append-command endpoint.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandsQuery selects the commands of one document accepted strictly after
// Since.
type CommandsQuery struct {
	DocumentID string    `json:"document_id"`
	Since      time.Time `json:"since"`
}
