// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "sync"

// Workers collects the stoppers owned by one component so that they can be
// torn down in a single step.
type Workers struct {
	mu       sync.Mutex
	stoppers []Stopper
}

// Add registers s.
func (w *Workers) Add(s Stopper) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stoppers = append(w.stoppers, s)
}

// Stop stops every registered stopper in reverse registration order and
// forgets them.
func (w *Workers) Stop() {
	w.mu.Lock()
	stoppers := w.stoppers
	w.stoppers = nil
	w.mu.Unlock()

	for i := len(stoppers) - 1; i >= 0; i-- {
		stoppers[i].Stop()
	}
}

// Len returns the number of registered stoppers.
func (w *Workers) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.stoppers)
}
