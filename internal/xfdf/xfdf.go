// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package xfdf encodes and decodes the XFDF annotation markup exchanged
// between the viewer and the document store.
//
// Two document kinds exist. A snapshot lists the full annotation set of a
// document inside <annots>. A command is a delta with <add>, <modify> and
// <delete> sections. Both are plain strings on the wire.
package xfdf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

// Namespace is the XFDF namespace written on the root element.
const Namespace = "http://ns.adobe.com/xfdf/"

// EmptyCommand is the encoding of a delta without operations. Commands equal
// to it carry no change and are never transmitted.
const EmptyCommand = xml.Header +
	`<xfdf xmlns="` + Namespace + `"><fields></fields><add></add><modify></modify><delete></delete></xfdf>`

// dateLayout is the PDF date format used by the date attribute (UTC only).
const dateLayout = "D:20060102150405Z"

// ErrMalformed is returned for markup that is not an XFDF document.
var ErrMalformed = errors.New("malformed xfdf")

// DeletedAnnotation identifies an annotation removed by a command.
type DeletedAnnotation struct {
	ID   string
	Page int
}

// Command is the decoded form of an annotation delta.
type Command struct {
	Add    []models.Annotation
	Modify []models.Annotation
	Delete []DeletedAnnotation
}

// Empty reports whether the command carries no operation.
func (c Command) Empty() bool {
	return len(c.Add) == 0 && len(c.Modify) == 0 && len(c.Delete) == 0
}

// Touched returns the ids of every annotation the command adds, modifies
// or deletes, in that order.
func (c Command) Touched() []string {
	ids := make([]string, 0, len(c.Add)+len(c.Modify)+len(c.Delete))
	ids = append(ids, models.AnnotationIDs(c.Add)...)
	ids = append(ids, models.AnnotationIDs(c.Modify)...)
	for _, d := range c.Delete {
		ids = append(ids, d.ID)
	}
	return ids
}

type xmlAnnot struct {
	XMLName  xml.Name
	Name     string `xml:"name,attr"`
	Page     int    `xml:"page,attr"`
	Rect     string `xml:"rect,attr,omitempty"`
	Color    string `xml:"color,attr,omitempty"`
	Title    string `xml:"title,attr,omitempty"`
	Subject  string `xml:"subject,attr,omitempty"`
	Date     string `xml:"date,attr,omitempty"`
	Contents string `xml:"contents,omitempty"`
}

type xmlAnnots struct {
	Items []xmlAnnot `xml:",any"`
}

type xmlDeleted struct {
	Page int    `xml:"page,attr"`
	ID   string `xml:",chardata"`
}

type xmlSnapshot struct {
	XMLName xml.Name  `xml:"xfdf"`
	Xmlns   string    `xml:"xmlns,attr,omitempty"`
	Fields  struct{}  `xml:"fields"`
	Annots  xmlAnnots `xml:"annots"`
}

type xmlCommand struct {
	XMLName xml.Name  `xml:"xfdf"`
	Xmlns   string    `xml:"xmlns,attr,omitempty"`
	Fields  struct{}  `xml:"fields"`
	Add     xmlAnnots `xml:"add"`
	Modify  xmlAnnots `xml:"modify"`
	Delete  struct {
		IDs []xmlDeleted `xml:"id"`
	} `xml:"delete"`
}

// EncodeSnapshot serializes the full annotation set of a document.
func EncodeSnapshot(annotations []models.Annotation) (string, error) {
	doc := xmlSnapshot{
		Xmlns:  Namespace,
		Annots: toXMLAnnots(annotations),
	}
	return marshal(doc)
}

// DecodeSnapshot parses a snapshot. An empty string is a document without
// annotations.
func DecodeSnapshot(snapshot string) ([]models.Annotation, error) {
	if strings.TrimSpace(snapshot) == "" {
		return nil, nil
	}

	var doc xmlSnapshot
	if err := xml.Unmarshal([]byte(snapshot), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fromXMLAnnots(doc.Annots)
}

// EncodeCommand serializes a delta. An empty delta encodes as EmptyCommand.
func EncodeCommand(c Command) (string, error) {
	if c.Empty() {
		return EmptyCommand, nil
	}

	doc := xmlCommand{
		Xmlns:  Namespace,
		Add:    toXMLAnnots(c.Add),
		Modify: toXMLAnnots(c.Modify),
	}
	for _, d := range c.Delete {
		doc.Delete.IDs = append(doc.Delete.IDs, xmlDeleted{Page: d.Page, ID: d.ID})
	}
	return marshal(doc)
}

// DecodeCommand parses a delta.
func DecodeCommand(command string) (Command, error) {
	var doc xmlCommand
	if err := xml.Unmarshal([]byte(command), &doc); err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	var (
		c   Command
		err error
	)
	if c.Add, err = fromXMLAnnots(doc.Add); err != nil {
		return Command{}, err
	}
	if c.Modify, err = fromXMLAnnots(doc.Modify); err != nil {
		return Command{}, err
	}
	for _, d := range doc.Delete.IDs {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			continue
		}
		c.Delete = append(c.Delete, DeletedAnnotation{ID: id, Page: d.Page})
	}
	return c, nil
}

// IsEmptyCommand reports whether command carries no operation. Markup that
// cannot be parsed is not considered empty.
func IsEmptyCommand(command string) bool {
	if command == EmptyCommand {
		return true
	}
	c, err := DecodeCommand(command)
	if err != nil {
		return false
	}
	return c.Empty()
}

// AnnotationIDs lists the annotation ids of a snapshot in document order.
func AnnotationIDs(snapshot string) ([]string, error) {
	annotations, err := DecodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return models.AnnotationIDs(annotations), nil
}

// Apply folds command into snapshot and returns the resulting snapshot.
// Added and modified annotations replace an existing annotation with the same
// id in place or are appended; deletions of unknown ids are ignored.
func Apply(snapshot, command string) (string, error) {
	annotations, err := DecodeSnapshot(snapshot)
	if err != nil {
		return "", err
	}
	c, err := DecodeCommand(command)
	if err != nil {
		return "", err
	}

	index := make(map[string]int, len(annotations))
	for i, a := range annotations {
		index[a.ID] = i
	}

	upsert := func(a models.Annotation) {
		if i, ok := index[a.ID]; ok {
			annotations[i] = a
			return
		}
		index[a.ID] = len(annotations)
		annotations = append(annotations, a)
	}
	for _, a := range c.Add {
		upsert(a)
	}
	for _, a := range c.Modify {
		upsert(a)
	}

	if len(c.Delete) > 0 {
		deleted := make(map[string]struct{}, len(c.Delete))
		for _, d := range c.Delete {
			deleted[d.ID] = struct{}{}
		}
		kept := annotations[:0]
		for _, a := range annotations {
			if _, ok := deleted[a.ID]; !ok {
				kept = append(kept, a)
			}
		}
		annotations = kept
	}

	return EncodeSnapshot(annotations)
}

// Equivalent reports whether two snapshots describe the same annotations
// regardless of order and formatting.
func Equivalent(a, b string) bool {
	left, err := DecodeSnapshot(a)
	if err != nil {
		return false
	}
	right, err := DecodeSnapshot(b)
	if err != nil {
		return false
	}
	if len(left) != len(right) {
		return false
	}

	byID := make(map[string]models.Annotation, len(left))
	for _, an := range left {
		byID[an.ID] = an
	}
	for _, an := range right {
		other, ok := byID[an.ID]
		if !ok || !sameAnnotation(an, other) {
			return false
		}
	}
	return true
}

func sameAnnotation(a, b models.Annotation) bool {
	return a.ID == b.ID &&
		a.Type == b.Type &&
		a.Page == b.Page &&
		a.Rect == b.Rect &&
		a.Color == b.Color &&
		a.Author == b.Author &&
		a.Subject == b.Subject &&
		a.Contents == b.Contents &&
		a.ModifiedAt.Truncate(time.Second).Equal(b.ModifiedAt.Truncate(time.Second))
}

func marshal(v any) (string, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error encoding xfdf: %w", err)
	}
	return xml.Header + string(data), nil
}

func toXMLAnnots(annotations []models.Annotation) xmlAnnots {
	out := xmlAnnots{Items: make([]xmlAnnot, 0, len(annotations))}
	for _, a := range annotations {
		item := xmlAnnot{
			XMLName:  xml.Name{Local: strings.ToLower(a.Type)},
			Name:     a.ID,
			Page:     a.Page,
			Rect:     a.Rect,
			Color:    a.Color,
			Title:    a.Author,
			Subject:  a.Subject,
			Contents: a.Contents,
		}
		if !a.ModifiedAt.IsZero() {
			item.Date = a.ModifiedAt.UTC().Format(dateLayout)
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func fromXMLAnnots(in xmlAnnots) ([]models.Annotation, error) {
	if len(in.Items) == 0 {
		return nil, nil
	}

	out := make([]models.Annotation, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("%w: %s annotation without name", ErrMalformed, item.XMLName.Local)
		}
		a := models.Annotation{
			ID:       item.Name,
			Type:     item.XMLName.Local,
			Page:     item.Page,
			Rect:     item.Rect,
			Color:    item.Color,
			Author:   item.Title,
			Subject:  item.Subject,
			Contents: item.Contents,
		}
		if item.Date != "" {
			ts, err := time.Parse(dateLayout, item.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: bad date %q", ErrMalformed, item.Date)
			}
			a.ModifiedAt = ts
		}
		out = append(out, a)
	}
	return out, nil
}
