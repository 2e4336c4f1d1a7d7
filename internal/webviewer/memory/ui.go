// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memory

import (
	"slices"
	"sync"
	"time"
)

// UIChange records one toggle of a UI element.
type UIChange struct {
	Element string
	Open    bool
	At      time.Time
}

type ui struct {
	mu      sync.Mutex
	open    map[string]bool
	history []UIChange
}

func newUI() *ui {
	return &ui{open: make(map[string]bool)}
}

func (u *ui) OpenElements(names ...string) {
	u.toggle(true, names)
}

func (u *ui) CloseElements(names ...string) {
	u.toggle(false, names)
}

func (u *ui) toggle(open bool, names []string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	at := time.Now()
	for _, name := range names {
		u.open[name] = open
		u.history = append(u.history, UIChange{Element: name, Open: open, At: at})
	}
}

func (u *ui) IsOpen(name string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.open[name]
}

func (u *ui) History() []UIChange {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.history)
}
