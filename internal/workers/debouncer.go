// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"time"
)

// Debouncer delays fn until no Call happened for the quiescence window.
// Bursts collapse into one invocation with the arguments of the last call.
type Debouncer[T any] struct {
	scheduler Scheduler
	wait      time.Duration
	fn        func(T)

	mu      sync.Mutex
	handle  Handle
	seq     uint64
	stopped bool
}

// NewDebouncer returns a Debouncer invoking fn on scheduler.
func NewDebouncer[T any](scheduler Scheduler, wait time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		scheduler: scheduler,
		wait:      wait,
		fn:        fn,
	}
}

// Call (re)starts the window with arg. Calls after Stop are ignored.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.scheduler.Cancel(d.handle)

	d.seq++
	seq := d.seq
	d.handle = d.scheduler.Schedule(d.wait, func() {
		d.mu.Lock()
		if d.stopped || seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.handle = Handle{}
		d.mu.Unlock()

		d.fn(arg)
	})
}

// Pending reports whether a call is waiting for its window to close.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.handle != Handle{}
}

// Stop drops a pending call and disables the debouncer.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.scheduler.Cancel(d.handle)
	d.handle = Handle{}
}

// Cancel drops a pending call. Later calls are scheduled as usual.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.scheduler.Cancel(d.handle)
	d.handle = Handle{}
}
