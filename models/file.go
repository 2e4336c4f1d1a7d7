// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FileInfo is the document record returned by the backend document store.
type FileInfo struct {
	// ID is the store's identifier of the document (the file identity).
	ID string `json:"id"`

	// Name is an optional human readable document name.
	Name string `json:"name,omitempty"`

	// Xfdf is the last known annotation snapshot of the document. Empty when
	// the document carries no annotations.
	Xfdf string `json:"xfdf,omitempty"`

	// Content holds the raw document bytes. It is never part of the JSON
	// metadata response.
	Content []byte `json:"-"`

	// CreatedAt is the time the document was first stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the time of the last content or annotation change.
	UpdatedAt time.Time `json:"updated_at"`
}

// FileIdentity is the pair of remote file ids tracked for one viewer instance.
// An empty string means the id is absent.
type FileIdentity struct {
	// Current is the id the viewer is bound to right now.
	Current string `json:"current,omitempty"`

	// Previous is the value Current held before the last transition.
	Previous string `json:"previous,omitempty"`
}

// Bound reports whether a current file id is present.
func (f FileIdentity) Bound() bool {
	return f.Current != ""
}
