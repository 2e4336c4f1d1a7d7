// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncState_ConsumeSynced(t *testing.T) {
	var s SyncState
	s.SetSynced([]string{"a", "b"})

	assert.False(t, s.ConsumeSynced([]string{"c"}))
	assert.True(t, s.ConsumeSynced([]string{"a", "c"}))
	assert.Equal(t, map[string]struct{}{"b": {}}, s.Synced)

	assert.True(t, s.ConsumeSynced([]string{"b"}))
	assert.False(t, s.ConsumeSynced([]string{"b"}))
	assert.Empty(t, s.Synced)
}

func TestSyncState_SetSyncedEmptyClears(t *testing.T) {
	var s SyncState
	s.SetSynced([]string{"a"})
	s.SetSynced(nil)

	assert.Nil(t, s.Synced)
	assert.False(t, s.ConsumeSynced([]string{"a"}))
}
