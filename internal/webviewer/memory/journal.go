// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memory

import (
	"github.com/MKhiriev/go-webviewer-sync/internal/xfdf"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

type journalOp struct {
	action     models.AnnotationAction
	annotation models.Annotation
}

// journal accumulates user edits between two command exports, folding
// repeated edits of one annotation into its net effect.
type journal struct {
	order []string
	ops   map[string]journalOp
}

func (j *journal) reset() {
	j.order = nil
	j.ops = nil
}

func (j *journal) set(a models.Annotation, action models.AnnotationAction) {
	if j.ops == nil {
		j.ops = make(map[string]journalOp)
	}
	if _, ok := j.ops[a.ID]; !ok {
		j.order = append(j.order, a.ID)
	}
	j.ops[a.ID] = journalOp{action: action, annotation: a}
}

func (j *journal) add(a models.Annotation) {
	j.set(a, models.ActionAdd)
}

func (j *journal) modify(a models.Annotation) {
	if op, ok := j.ops[a.ID]; ok && op.action == models.ActionAdd {
		j.set(a, models.ActionAdd)
		return
	}
	j.set(a, models.ActionModify)
}

func (j *journal) delete(a models.Annotation) {
	if op, ok := j.ops[a.ID]; ok && op.action == models.ActionAdd {
		// added and removed within one window: no net change
		delete(j.ops, a.ID)
		return
	}
	j.set(a, models.ActionDelete)
}

func (j *journal) command() xfdf.Command {
	var c xfdf.Command
	for _, id := range j.order {
		op, ok := j.ops[id]
		if !ok {
			continue
		}
		switch op.action {
		case models.ActionAdd:
			c.Add = append(c.Add, op.annotation)
		case models.ActionModify:
			c.Modify = append(c.Modify, op.annotation)
		case models.ActionDelete:
			c.Delete = append(c.Delete, xfdf.DeletedAnnotation{ID: id, Page: op.annotation.Page})
		}
	}
	return c
}
