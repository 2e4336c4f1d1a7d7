// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-webviewer-sync/internal/xfdf"
	"github.com/MKhiriev/go-webviewer-sync/models"
)

const (
	FieldID      = "id"
	FieldName    = "name"
	FieldContent = "content"
	FieldCommand = "command"
	FieldXfdf    = "xfdf"
)

// Limits enforced on inbound documents and commands.
const (
	MaxDocumentIDLength = 128
	MaxNameLength       = 255
	MaxContentSize      = 64 << 20
	MaxCommandSize      = 4 << 20
	MaxXfdfSize         = 16 << 20
)

type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate checks a [models.FileInfo], [models.CommandRequest] or
// [models.CommandsQuery]. With no fields every rule of the type is applied.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FileInfo:
		return v.validateFileInfo(value, fields...)
	case *models.FileInfo:
		return v.validateFileInfo(*value, fields...)

	case models.CommandRequest:
		return v.validateCommandRequest(value, fields...)
	case *models.CommandRequest:
		return v.validateCommandRequest(*value, fields...)

	case models.CommandsQuery:
		return v.validateCommandsQuery(value, fields...)
	case *models.CommandsQuery:
		return v.validateCommandsQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateFileInfo(doc models.FileInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldContent}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldID:
			err = validateDocumentID(doc.ID)
		case FieldName:
			err = validateName(doc.Name)
		case FieldContent:
			err = validateContent(doc.Content)
		case FieldXfdf:
			err = validateXfdf(doc.Xfdf)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *DocumentValidator) validateCommandRequest(req models.CommandRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCommand}
	}

	for _, field := range fields {
		if field != FieldCommand {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := validateCommand(req.Command); err != nil {
			return err
		}
	}

	return nil
}

// validateCommandsQuery accepts any since, the zero time included: it
// selects the whole log.
func (v *DocumentValidator) validateCommandsQuery(q models.CommandsQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, field := range fields {
		if field != FieldID {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := validateDocumentID(q.DocumentID); err != nil {
			return err
		}
	}

	return nil
}

func validateDocumentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyDocumentID
	}
	if len(id) > MaxDocumentIDLength || strings.ContainsAny(id, "/?#") || hasControl(id) {
		return ErrInvalidDocumentID
	}
	return nil
}

func validateName(name string) error {
	if len(name) > MaxNameLength || hasControl(name) {
		return ErrInvalidName
	}
	return nil
}

func validateContent(content []byte) error {
	if len(content) == 0 {
		return ErrEmptyContent
	}
	if len(content) > MaxContentSize {
		return ErrContentTooLarge
	}
	return nil
}

func validateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return ErrEmptyCommand
	}
	if len(command) > MaxCommandSize {
		return ErrCommandTooLarge
	}
	if _, err := xfdf.DecodeCommand(command); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedCommand, err)
	}
	return nil
}

// validateXfdf accepts the empty snapshot, which clears the annotations.
func validateXfdf(snapshot string) error {
	if len(snapshot) > MaxXfdfSize {
		return ErrXfdfTooLarge
	}
	if strings.TrimSpace(snapshot) == "" {
		return nil
	}
	if _, err := xfdf.DecodeSnapshot(snapshot); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedXfdf, err)
	}
	return nil
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
