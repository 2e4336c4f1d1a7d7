// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/internal/xfdf"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// AddAnnotation adds a user annotation. A missing id is generated and a
// missing author defaults to the current user.
func (i *Instance) AddAnnotation(a models.Annotation) (models.Annotation, error) {
	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return models.Annotation{}, webviewer.ErrNoDocument
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Author == "" {
		a.Author = i.user
	}
	a.ModifiedAt = now()
	a.AutomaticLink = false
	i.upsert(a)
	i.journal.add(a)
	i.mu.Unlock()

	i.emitChange([]models.Annotation{a}, models.ActionAdd, models.ChangeInfo{})
	return a, nil
}

// ModifyAnnotation replaces a user annotation with the same id.
func (i *Instance) ModifyAnnotation(a models.Annotation) (models.Annotation, error) {
	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return models.Annotation{}, webviewer.ErrNoDocument
	}
	if i.indexOf(a.ID) < 0 {
		i.mu.Unlock()
		return models.Annotation{}, webviewer.ErrUnknownAnnotation
	}
	a.ModifiedAt = now()
	i.upsert(a)
	i.journal.modify(a)
	i.mu.Unlock()

	i.emitChange([]models.Annotation{a}, models.ActionModify, models.ChangeInfo{})
	return a, nil
}

// DeleteAnnotation removes a user annotation.
func (i *Instance) DeleteAnnotation(id string) error {
	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return webviewer.ErrNoDocument
	}
	removed, ok := i.remove(id)
	if !ok {
		i.mu.Unlock()
		return webviewer.ErrUnknownAnnotation
	}
	i.journal.delete(removed)
	i.mu.Unlock()

	i.emitChange([]models.Annotation{removed}, models.ActionDelete, models.ChangeInfo{})
	return nil
}

// AddAutomaticLink adds a link generated by the viewer itself. It is neither
// journaled nor announced.
func (i *Instance) AddAutomaticLink(a models.Annotation) (models.Annotation, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.doc == nil {
		return models.Annotation{}, webviewer.ErrNoDocument
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Type = "link"
	a.AutomaticLink = true
	i.upsert(a)
	return a, nil
}

func (i *Instance) ExportAnnotations(_ context.Context, opts webviewer.ExportOptions) (string, error) {
	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return "", webviewer.ErrNoDocument
	}
	list := opts.Annotations
	if list == nil {
		list = slices.Clone(i.annotations)
	}
	i.mu.Unlock()

	selected := make([]models.Annotation, 0, len(list))
	for _, a := range list {
		switch {
		case a.Type == "link" && !opts.Links:
		case a.Type == "widget" && !opts.Widgets:
		default:
			selected = append(selected, a)
		}
	}
	return xfdf.EncodeSnapshot(selected)
}

func (i *Instance) ExportAnnotationCommand(_ context.Context) (string, error) {
	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return "", webviewer.ErrNoDocument
	}
	c := i.journal.command()
	i.journal.reset()
	i.mu.Unlock()

	return xfdf.EncodeCommand(c)
}

func (i *Instance) ImportAnnotations(_ context.Context, snapshot string) ([]models.Annotation, error) {
	annotations, err := xfdf.DecodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return nil, webviewer.ErrNoDocument
	}
	for _, a := range annotations {
		i.upsert(a)
	}
	i.mu.Unlock()

	i.emitChange(annotations, models.ActionAdd, models.ChangeInfo{Imported: true})
	return annotations, nil
}

func (i *Instance) ImportAnnotationCommand(_ context.Context, command string) ([]models.Annotation, error) {
	c, err := xfdf.DecodeCommand(command)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return nil, webviewer.ErrNoDocument
	}
	for _, a := range c.Add {
		i.upsert(a)
	}
	for _, a := range c.Modify {
		i.upsert(a)
	}
	var removed []models.Annotation
	for _, d := range c.Delete {
		if a, ok := i.remove(d.ID); ok {
			removed = append(removed, a)
		}
	}
	i.mu.Unlock()

	info := models.ChangeInfo{Imported: true}
	i.emitChange(c.Add, models.ActionAdd, info)
	i.emitChange(c.Modify, models.ActionModify, info)
	i.emitChange(removed, models.ActionDelete, info)

	touched := make([]models.Annotation, 0, len(c.Add)+len(c.Modify)+len(removed))
	touched = append(touched, c.Add...)
	touched = append(touched, c.Modify...)
	touched = append(touched, removed...)
	return touched, nil
}

func (i *Instance) GetAnnotationsList() []models.Annotation {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.annotations)
}

// DeleteAnnotations removes the listed annotations. Deletions that are not
// system originated are journaled like user edits.
func (i *Instance) DeleteAnnotations(annotations []models.Annotation, opts models.ChangeInfo) error {
	i.mu.Lock()
	if i.doc == nil {
		i.mu.Unlock()
		return webviewer.ErrNoDocument
	}
	var removed []models.Annotation
	for _, a := range annotations {
		if r, ok := i.remove(a.ID); ok {
			removed = append(removed, r)
			if !opts.SystemOriginated() {
				i.journal.delete(r)
			}
		}
	}
	i.mu.Unlock()

	i.emitChange(removed, models.ActionDelete, opts)
	return nil
}

func (i *Instance) RedrawAnnotation(a models.Annotation) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.redrawn = append(i.redrawn, a.ID)
}

// Redrawn returns the ids passed to RedrawAnnotation in call order.
func (i *Instance) Redrawn() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.redrawn)
}

func (i *Instance) SetCurrentUser(name string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.user = name
}

// CurrentUser returns the author assigned to new annotations.
func (i *Instance) CurrentUser() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.user
}

// upsert and remove expect i.mu to be held.
func (i *Instance) upsert(a models.Annotation) {
	if idx := i.indexOf(a.ID); idx >= 0 {
		i.annotations[idx] = a
		return
	}
	i.annotations = append(i.annotations, a)
}

func (i *Instance) remove(id string) (models.Annotation, bool) {
	idx := i.indexOf(id)
	if idx < 0 {
		return models.Annotation{}, false
	}
	a := i.annotations[idx]
	i.annotations = slices.Delete(i.annotations, idx, idx+1)
	return a, true
}

func (i *Instance) indexOf(id string) int {
	return slices.IndexFunc(i.annotations, func(a models.Annotation) bool {
		return a.ID == id
	})
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
