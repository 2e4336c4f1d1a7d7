// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity tracks which remote document a viewer is bound to.
//
// The tracker has two states, Unbound and Bound(id). Every transition that
// replaces or clears the current id first copies it into Previous.
package identity

import (
	"sync"

	"github.com/MKhiriev/go-webviewer-sync/models"
)

// State is the tracker state.
type State int

const (
	Unbound State = iota
	Bound
)

func (s State) String() string {
	if s == Bound {
		return "bound"
	}
	return "unbound"
}

// Tracker is safe for concurrent use.
type Tracker struct {
	mu         sync.RWMutex
	identity   models.FileIdentity
	generation uint64
}

// NewTracker returns an Unbound tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnDocumentLoaded binds the externally managed id when one is available and
// otherwise leaves the state untouched.
func (t *Tracker) OnDocumentLoaded(externalID string, available bool) models.FileIdentity {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	if available && externalID != "" {
		t.bind(externalID)
	}
	return t.identity
}

// OnDocumentUnloaded moves to Unbound.
func (t *Tracker) OnDocumentUnloaded() models.FileIdentity {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	t.bind("")
	return t.identity
}

// OnSaveCompleted binds the id returned by a save. An empty id is ignored.
func (t *Tracker) OnSaveCompleted(newID string) models.FileIdentity {
	t.mu.Lock()
	defer t.mu.Unlock()

	if newID != "" {
		t.bind(newID)
	}
	return t.identity
}

// OnExternalIDChanged follows the externally managed id attribute. Nothing
// changes while the attribute is unavailable or empty.
func (t *Tracker) OnExternalIDChanged(newID string, available bool) models.FileIdentity {
	t.mu.Lock()
	defer t.mu.Unlock()

	if available && newID != "" {
		t.bind(newID)
	}
	return t.identity
}

// bind expects t.mu to be held. Re-binding the current id keeps Previous.
func (t *Tracker) bind(id string) {
	if id == t.identity.Current {
		return
	}
	t.identity.Previous = t.identity.Current
	t.identity.Current = id
}

// Current returns the bound id.
func (t *Tracker) Current() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.identity.Current, t.identity.Current != ""
}

// Identity returns a copy of the tracked ids.
func (t *Tracker) Identity() models.FileIdentity {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.identity
}

// State returns Bound when a current id is present.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.identity.Bound() {
		return Bound
	}
	return Unbound
}

// DocumentGeneration is incremented on every document load and unload.
// Callers compare generations to detect that the document was replaced
// while they were waiting.
func (t *Tracker) DocumentGeneration() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.generation
}
