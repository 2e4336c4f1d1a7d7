// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the timers behind the synchronization loops: a
// cancellable scheduler, a trailing-edge debouncer, a fail-stop polling job
// and a Workers aggregate that tears them down together.
package workers

import "time"

// Stopper is anything that can be stopped as part of a teardown. Stop must
// be safe to call more than once.
type Stopper interface {
	Stop()
}

// StopFunc adapts a plain function to Stopper.
type StopFunc func()

// Stop calls f.
func (f StopFunc) Stop() {
	f()
}

// Handle identifies a scheduled call. The zero Handle is never returned by
// Schedule and cancelling it is a no-op.
type Handle struct {
	id uint64
}

// Scheduler runs functions after a delay.
//
// Example:
//
//	h := s.Schedule(time.Second, flush)
//	s.Cancel(h) // flush will not run
type Scheduler interface {
	// Schedule runs fn once after delay on a goroutine owned by the
	// scheduler.
	Schedule(delay time.Duration, fn func()) Handle
	// Cancel prevents a pending call from running. Calls already running or
	// finished are unaffected.
	Cancel(h Handle)
}
