// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sort"
	"sync"
	"time"
)

// TimeScheduler implements Scheduler on time.AfterFunc.
type TimeScheduler struct {
	mu     sync.Mutex
	next   uint64
	timers map[uint64]*time.Timer
}

// NewTimeScheduler returns a ready TimeScheduler.
func NewTimeScheduler() *TimeScheduler {
	return &TimeScheduler{timers: make(map[uint64]*time.Timer)}
}

func (s *TimeScheduler) Schedule(delay time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	id := s.next
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, live := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()

		if live {
			fn()
		}
	})
	return Handle{id: id}
}

func (s *TimeScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h.id]; ok {
		t.Stop()
		delete(s.timers, h.id)
	}
}

// Pending returns the number of calls not yet run or cancelled.
func (s *TimeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// ManualScheduler is a Scheduler driven by an explicit clock. Scheduled
// calls run synchronously inside Advance once their delay has elapsed.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	next  uint64
	calls map[uint64]manualCall
}

type manualCall struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewManualScheduler returns a ManualScheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{calls: make(map[uint64]manualCall)}
}

func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.calls[s.next] = manualCall{at: s.now + delay, seq: s.next, fn: fn}
	return Handle{id: s.next}
}

func (s *ManualScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.calls, h.id)
}

// Advance moves the clock forward by d and runs every call that became due,
// in due-time order.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	now := s.now
	s.mu.Unlock()

	for {
		s.mu.Lock()
		due := make([]manualCall, 0)
		for _, c := range s.calls {
			if c.at <= now {
				due = append(due, c)
			}
		}
		if len(due) == 0 {
			s.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at == due[j].at {
				return due[i].seq < due[j].seq
			}
			return due[i].at < due[j].at
		})
		first := due[0]
		delete(s.calls, first.seq)
		s.mu.Unlock()

		first.fn()
	}
}

// Pending returns the number of calls not yet run or cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
