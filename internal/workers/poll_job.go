// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultPollInterval is used when Start receives a non-positive interval.
const DefaultPollInterval = time.Second

// PollFunc is one polling tick.
type PollFunc func(ctx context.Context) error

// PollJob calls a PollFunc on a ticker until it is stopped or the function
// fails. A failure ends the loop for good; it is not retried.
type PollJob struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	done   chan struct{}
	err    error
}

// NewPollJob returns an idle job.
func NewPollJob() *PollJob {
	done := make(chan struct{})
	close(done)
	return &PollJob{done: done}
}

// Start stops any previous loop, then runs fn every interval on a
// background goroutine. The loop exits when ctx is cancelled, Stop is called
// or fn returns an error; that error is reported by Err.
func (j *PollJob) Start(ctx context.Context, interval time.Duration, fn PollFunc) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel = cancel
	j.done = done
	j.err = nil
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				err := fn(jobCtx)
				if err == nil {
					continue
				}
				if jobCtx.Err() != nil && errors.Is(err, context.Canceled) {
					return
				}
				j.mu.Lock()
				j.err = err
				j.mu.Unlock()
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call when the job
// is not running. Must not be called from inside the PollFunc.
func (j *PollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Done is closed when the current loop has exited.
func (j *PollJob) Done() <-chan struct{} {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.done
}

// Err returns the error that halted the loop, if any.
func (j *PollJob) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}
