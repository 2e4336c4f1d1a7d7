// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks document store input before it reaches the
// services: document ids, names, content size and annotation commands.
//
// A [Validator] is injected into a service wrapper and called with the
// value to check and, optionally, the names of the fields to check.
// Failures are sentinel errors from errors.go so callers can match them
// with errors.Is.
package validators

import "context"

// Validator validates a value, optionally only the named fields of it.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
