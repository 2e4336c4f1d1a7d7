// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Annotation is a single annotation of the in-memory document model.
type Annotation struct {
	// ID is the annotation name; unique within one document.
	ID string `json:"id"`

	// Type is the annotation subtype as written in XFDF (square, highlight,
	// text, freetext, ink, link, ...).
	Type string `json:"type"`

	// Page is the zero-based page index.
	Page int `json:"page"`

	Rect     string `json:"rect,omitempty"`
	Color    string `json:"color,omitempty"`
	Author   string `json:"author,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Contents string `json:"contents,omitempty"`

	// ModifiedAt is the last modification time.
	ModifiedAt time.Time `json:"modified_at,omitempty"`

	// AutomaticLink marks a link generated by the viewer itself (e.g. a
	// detected URL). Such annotations are never exported or imported.
	AutomaticLink bool `json:"-"`
}

// AnnotationAction is the kind of change reported by an annotation event.
type AnnotationAction string

const (
	ActionAdd    AnnotationAction = "add"
	ActionModify AnnotationAction = "modify"
	ActionDelete AnnotationAction = "delete"
)

// SourceSync tags annotation mutations performed by synchronization.
const SourceSync = "sync"

// ChangeInfo describes where an annotation change came from.
type ChangeInfo struct {
	// Imported is true for changes caused by importing XFDF.
	Imported bool `json:"imported"`

	// Source names the subsystem that caused the change; empty for user edits.
	Source string `json:"source,omitempty"`
}

// SystemOriginated reports whether the change was not made by the user.
func (c ChangeInfo) SystemOriginated() bool {
	return c.Imported || c.Source == SourceSync
}

// AnnotationChange is the payload of an annotationChanged event.
type AnnotationChange struct {
	Annotations []Annotation
	Action      AnnotationAction
	Info        ChangeInfo
}

// AnnotationIDs returns the ids of annotations in their original order.
func AnnotationIDs(annotations []Annotation) []string {
	ids := make([]string, 0, len(annotations))
	for _, a := range annotations {
		ids = append(ids, a.ID)
	}
	return ids
}
