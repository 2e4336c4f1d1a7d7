// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package binding models the host platform's data binding: string
// attributes with an availability status, change notification and an
// optional read-only flag, plus the session that supplies the
// forgery-protection token.
package binding

import (
	"errors"
	"sync"
)

// Status is the availability of a bound value.
type Status string

const (
	Available   Status = "available"
	Loading     Status = "loading"
	Unavailable Status = "unavailable"
)

// ErrReadOnly is returned by SetValue on a read-only attribute.
var ErrReadOnly = errors.New("attribute is read-only")

// Subscription identifies a change listener.
type Subscription uint64

// Value is a bound value the viewer reads.
type Value interface {
	Value() string
	Status() Status
	// Subscribe registers fn, called after every change of value or status.
	Subscribe(fn func(value string, status Status)) Subscription
	Unsubscribe(s Subscription)
}

// EditableValue is a bound value the viewer may also write.
type EditableValue interface {
	Value
	ReadOnly() bool
	SetValue(value string) error
}

// Session exposes the platform session.
type Session interface {
	CSRFToken() string
}

// StaticSession is a Session with a fixed token.
type StaticSession string

// CSRFToken returns the token.
func (s StaticSession) CSRFToken() string {
	return string(s)
}

// IsAvailable reports whether v is non-nil and available.
func IsAvailable(v Value) bool {
	return v != nil && v.Status() == Available
}

type listener struct {
	id Subscription
	fn func(string, Status)
}

// Attribute is an in-memory EditableValue. It is safe for concurrent use;
// listeners run synchronously after the lock is released.
type Attribute struct {
	mu        sync.Mutex
	value     string
	status    Status
	readOnly  bool
	listeners []listener
	next      Subscription
}

var _ EditableValue = (*Attribute)(nil)

// NewAttribute returns an available, writable attribute holding value.
func NewAttribute(value string) *Attribute {
	return &Attribute{value: value, status: Available}
}

// NewReadOnlyAttribute returns an available, read-only attribute.
func NewReadOnlyAttribute(value string) *Attribute {
	return &Attribute{value: value, status: Available, readOnly: true}
}

func (a *Attribute) Value() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

func (a *Attribute) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *Attribute) ReadOnly() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.readOnly
}

// SetValue stores value when the attribute is writable.
func (a *Attribute) SetValue(value string) error {
	a.mu.Lock()
	if a.readOnly {
		a.mu.Unlock()
		return ErrReadOnly
	}
	a.mu.Unlock()

	a.update(value, Available)
	return nil
}

// Update changes value and status as the platform would, regardless of the
// read-only flag.
func (a *Attribute) Update(value string, status Status) {
	a.update(value, status)
}

// SetReadOnly changes the read-only flag.
func (a *Attribute) SetReadOnly(readOnly bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.readOnly = readOnly
}

func (a *Attribute) update(value string, status Status) {
	a.mu.Lock()
	a.value = value
	a.status = status
	fns := make([]func(string, Status), 0, len(a.listeners))
	for _, l := range a.listeners {
		fns = append(fns, l.fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(value, status)
	}
}

func (a *Attribute) Subscribe(fn func(value string, status Status)) Subscription {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	a.listeners = append(a.listeners, listener{id: a.next, fn: fn})
	return a.next
}

func (a *Attribute) Unsubscribe(s Subscription) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.listeners[:0]
	for _, l := range a.listeners {
		if l.id != s {
			kept = append(kept, l)
		}
	}
	a.listeners = kept
}

// Listeners returns the number of registered listeners.
func (a *Attribute) Listeners() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.listeners)
}
