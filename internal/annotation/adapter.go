// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package annotation exports and imports the annotation layer of the loaded
// document as XFDF snapshots and commands. Automatic links generated by the
// viewer are never exported, imported over or deleted.
package annotation

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-webviewer-sync/internal/logger"
	"github.com/MKhiriev/go-webviewer-sync/internal/webviewer"
	"github.com/MKhiriev/go-webviewer-sync/internal/xfdf"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

// Adapter wraps the SDK annotation manager.
type Adapter struct {
	manager webviewer.AnnotationManager
	logger  *logger.Logger
}

// NewAdapter returns an Adapter over manager.
func NewAdapter(manager webviewer.AnnotationManager, log *logger.Logger) *Adapter {
	return &Adapter{
		manager: manager,
		logger:  log,
	}
}

// ExportSnapshot serializes every annotation except automatic links,
// including fields, links and widgets.
func (a *Adapter) ExportSnapshot(ctx context.Context) (string, error) {
	snapshot, err := a.manager.ExportAnnotations(ctx, webviewer.ExportOptions{
		Annotations: userAnnotations(a.manager.GetAnnotationsList()),
		Fields:      true,
		Links:       true,
		Widgets:     true,
	})
	if err != nil {
		return "", fmt.Errorf("error exporting annotations: %w", err)
	}
	return snapshot, nil
}

// ExportCommand returns the delta since the previous call or
// xfdf.EmptyCommand.
func (a *Adapter) ExportCommand(ctx context.Context) (string, error) {
	command, err := a.manager.ExportAnnotationCommand(ctx)
	if err != nil {
		return "", fmt.Errorf("error exporting annotation command: %w", err)
	}
	return command, nil
}

// ImportSnapshot applies snapshot as a system-originated import. Entries
// colliding with local automatic links are dropped first.
func (a *Adapter) ImportSnapshot(ctx context.Context, snapshot string) error {
	annotations, err := xfdf.DecodeSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("error decoding snapshot: %w", err)
	}

	synthetic := automaticLinkIDs(a.manager.GetAnnotationsList())
	filtered := make([]models.Annotation, 0, len(annotations))
	for _, an := range annotations {
		if _, ok := synthetic[an.ID]; ok {
			continue
		}
		filtered = append(filtered, an)
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) != len(annotations) {
		a.logger.Debug().
			Int("dropped", len(annotations)-len(filtered)).
			Msg("skipping annotations shadowed by automatic links")
		if snapshot, err = xfdf.EncodeSnapshot(filtered); err != nil {
			return err
		}
	}

	if _, err := a.manager.ImportAnnotations(ctx, snapshot); err != nil {
		return fmt.Errorf("error importing annotations: %w", err)
	}
	return nil
}

// ImportCommand applies command and redraws exactly the annotations it
// touched, which are returned. The empty command is a no-op.
func (a *Adapter) ImportCommand(ctx context.Context, command string) ([]models.Annotation, error) {
	if xfdf.IsEmptyCommand(command) {
		return nil, nil
	}

	touched, err := a.manager.ImportAnnotationCommand(ctx, command)
	if err != nil {
		return nil, fmt.Errorf("error importing annotation command: %w", err)
	}
	for _, an := range touched {
		a.manager.RedrawAnnotation(an)
	}
	return touched, nil
}

// CommandTargets returns the ids of the annotations command would touch.
func (a *Adapter) CommandTargets(command string) ([]string, error) {
	c, err := xfdf.DecodeCommand(command)
	if err != nil {
		return nil, fmt.Errorf("error decoding command: %w", err)
	}
	return c.Touched(), nil
}

// ReconcileDeletions deletes every local annotation whose id is missing from
// remoteSnapshot. The remote side is authoritative for deletions since a
// snapshot cannot express absence otherwise. Deleted ids are returned.
func (a *Adapter) ReconcileDeletions(ctx context.Context, remoteSnapshot string) ([]string, error) {
	remoteIDs, err := xfdf.AnnotationIDs(remoteSnapshot)
	if err != nil {
		return nil, fmt.Errorf("error reading remote annotation ids: %w", err)
	}
	remote := make(map[string]struct{}, len(remoteIDs))
	for _, id := range remoteIDs {
		remote[id] = struct{}{}
	}

	var stale []models.Annotation
	for _, an := range userAnnotations(a.manager.GetAnnotationsList()) {
		if _, ok := remote[an.ID]; !ok {
			stale = append(stale, an)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}

	if err := a.manager.DeleteAnnotations(stale, models.ChangeInfo{Source: models.SourceSync}); err != nil {
		return nil, fmt.Errorf("error deleting annotations: %w", err)
	}

	ids := models.AnnotationIDs(stale)
	a.logger.Debug().Strs("ids", ids).Msg("removed annotations deleted remotely")
	return ids, nil
}

// IsEmptyCommand reports whether command carries no change.
func (a *Adapter) IsEmptyCommand(command string) bool {
	return xfdf.IsEmptyCommand(command)
}

func userAnnotations(list []models.Annotation) []models.Annotation {
	out := make([]models.Annotation, 0, len(list))
	for _, an := range list {
		if !an.AutomaticLink {
			out = append(out, an)
		}
	}
	return out
}

func automaticLinkIDs(list []models.Annotation) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, an := range list {
		if an.AutomaticLink {
			ids[an.ID] = struct{}{}
		}
	}
	return ids
}
