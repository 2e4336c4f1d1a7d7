// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDocumentID   = errors.New("document id is required")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrEmptyContent      = errors.New("document content is required")
	ErrContentTooLarge   = errors.New("document content is too large")
	ErrInvalidName       = errors.New("invalid document name")
	ErrEmptyCommand      = errors.New("command is required")
	ErrMalformedCommand  = errors.New("malformed xfdf command")
	ErrCommandTooLarge   = errors.New("command is too large")
	ErrMalformedXfdf     = errors.New("malformed xfdf snapshot")
	ErrXfdfTooLarge      = errors.New("xfdf snapshot is too large")
)
