// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurstLastArgumentWins(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	d := NewDebouncer(s, time.Second, func(v int) { got = append(got, v) })

	d.Call(1)
	s.Advance(400 * time.Millisecond)
	d.Call(2)
	s.Advance(400 * time.Millisecond)
	d.Call(3)

	s.Advance(999 * time.Millisecond)
	assert.Empty(t, got)

	s.Advance(time.Millisecond)
	assert.Equal(t, []int{3}, got)
	assert.Equal(t, 0, s.Pending())
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	s := NewManualScheduler()
	var got []string
	d := NewDebouncer(s, time.Second, func(v string) { got = append(got, v) })

	d.Call("a")
	s.Advance(time.Second)
	d.Call("b")
	s.Advance(time.Second)

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDebouncer_StopDropsPendingCall(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	d := NewDebouncer(s, time.Second, func(struct{}) { calls++ })

	d.Call(struct{}{})
	d.Stop()
	d.Call(struct{}{})
	s.Advance(2 * time.Second)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, s.Pending())
}

func TestDebouncer_WithTimeScheduler(t *testing.T) {
	done := make(chan int, 1)
	d := NewDebouncer(NewTimeScheduler(), 10*time.Millisecond, func(v int) { done <- v })

	for i := 0; i < 5; i++ {
		d.Call(i)
	}

	select {
	case v := <-done:
		assert.Equal(t, 4, v)
	case <-time.After(time.Second):
		t.Fatal("debounced function was not called")
	}
}

func TestDebouncer_CancelKeepsDebouncerUsable(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	d := NewDebouncer(s, time.Second, func(v int) { got = append(got, v) })

	d.Call(1)
	d.Cancel()
	s.Advance(2 * time.Second)
	assert.Empty(t, got)

	d.Call(2)
	s.Advance(time.Second)
	assert.Equal(t, []int{2}, got)
}

func TestDebouncer_Pending(t *testing.T) {
	s := NewManualScheduler()
	var pendingInside bool
	var d *Debouncer[int]
	d = NewDebouncer(s, time.Second, func(int) { pendingInside = d.Pending() })

	assert.False(t, d.Pending())
	d.Call(1)
	assert.True(t, d.Pending())

	s.Advance(time.Second)
	assert.False(t, d.Pending())
	assert.False(t, pendingInside)

	d.Call(2)
	d.Cancel()
	assert.False(t, d.Pending())
}
