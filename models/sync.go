// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the per-viewer synchronization state owned by the sync engine.
type SyncState struct {
	// LastQuery is the cursor of the command log: the next poll asks for
	// commands newer than this time.
	LastQuery time.Time

	// PendingCommands holds commands this instance pushed and has not yet
	// seen echoed back by a poll, oldest first.
	PendingCommands []string

	// Synced holds the ids the command being imported is expected to touch.
	// Each import-originated change event consumes its ids.
	Synced map[string]struct{}

	// PreviousXfdf is the last snapshot written to or read from the XFDF
	// attribute by this instance.
	PreviousXfdf string

	// RemoteXfdf is the store snapshot this instance last applied or pushed.
	RemoteXfdf string
}

// ConsumePending removes the first pending command equal to command and
// reports whether one was found.
func (s *SyncState) ConsumePending(command string) bool {
	for i, pending := range s.PendingCommands {
		if pending == command {
			s.PendingCommands = append(s.PendingCommands[:i], s.PendingCommands[i+1:]...)
			return true
		}
	}
	return false
}

// AddPending records an exported command. When limit is positive the oldest
// entries are dropped so that at most limit commands are kept.
func (s *SyncState) AddPending(command string, limit int) {
	s.PendingCommands = append(s.PendingCommands, command)
	if limit > 0 && len(s.PendingCommands) > limit {
		s.PendingCommands = append([]string(nil), s.PendingCommands[len(s.PendingCommands)-limit:]...)
	}
}

// SetSynced replaces the synced set with ids. No ids clear it.
func (s *SyncState) SetSynced(ids []string) {
	if len(ids) == 0 {
		s.Synced = nil
		return
	}
	s.Synced = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.Synced[id] = struct{}{}
	}
}

// ConsumeSynced removes ids from the synced set and reports whether any of
// them was present.
func (s *SyncState) ConsumeSynced(ids []string) bool {
	found := false
	for _, id := range ids {
		if _, ok := s.Synced[id]; ok {
			delete(s.Synced, id)
			found = true
		}
	}
	return found
}
