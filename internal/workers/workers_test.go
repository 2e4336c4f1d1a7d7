// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
)

// countingStopper is a test implementation of the Stopper interface
// that tracks how many times Stop was called.
type countingStopper struct {
	stopCount int
}

func (m *countingStopper) Stop() {
	m.stopCount++
}

func TestWorkers_Stop_AllStoppersAreCalled(t *testing.T) {
	s1 := &countingStopper{}
	s2 := &countingStopper{}
	s3 := &countingStopper{}

	ws := &Workers{}
	ws.Add(s1)
	ws.Add(s2)
	ws.Add(s3)
	ws.Stop()

	for i, s := range []*countingStopper{s1, s2, s3} {
		if s.stopCount != 1 {
			t.Errorf("stopper[%d]: expected stopCount=1, got %d", i, s.stopCount)
		}
	}
}

func TestWorkers_Stop_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic on an empty aggregate
	ws.Stop()
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	order := []int{}

	ws := &Workers{}
	for id := 1; id <= 3; id++ {
		ws.Add(StopFunc(func() { order = append(order, id) }))
	}
	ws.Stop()

	expected := []int{3, 2, 1}
	if len(order) != len(expected) {
		t.Fatalf("expected %d stops, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Stop_ForgetsStoppers(t *testing.T) {
	s := &countingStopper{}
	ws := &Workers{}
	ws.Add(s)

	ws.Stop()
	ws.Stop()

	if s.stopCount != 1 {
		t.Errorf("expected stopCount=1 after repeated Stop, got %d", s.stopCount)
	}
	if ws.Len() != 0 {
		t.Errorf("expected no registered stoppers, got %d", ws.Len())
	}
}
