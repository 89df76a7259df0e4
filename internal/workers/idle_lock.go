// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/akimenko/securevault/internal/gate"
	"github.com/akimenko/securevault/internal/logger"
)

// lockable is the slice of the authorization gate the idle worker
// needs.
type lockable interface {
	State() gate.State
	LastActivity() time.Time
	Logout(ctx context.Context)
}

// IdleLockWorker logs the session out after a period without gated
// vault activity.
type IdleLockWorker struct {
	gate    lockable
	timeout time.Duration
	poll    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now    func() time.Time
	logger *logger.Logger
}

// defaultPollInterval bounds how stale an expired session can linger.
const defaultPollInterval = 15 * time.Second

// NewIdleLockWorker returns a worker that locks the gate after timeout
// of inactivity. A non-positive timeout disables the worker entirely.
func NewIdleLockWorker(gate lockable, timeout time.Duration, logger *logger.Logger) *IdleLockWorker {
	return &IdleLockWorker{
		gate:    gate,
		timeout: timeout,
		poll:    defaultPollInterval,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

// Run implements Worker. The watch goroutine runs until Stop.
func (w *IdleLockWorker) Run() {
	w.Start(context.Background())
}

// Start launches the background watcher. The goroutine exits when ctx
// is cancelled or Stop is called. Restarting replaces a previous run.
func (w *IdleLockWorker) Start(ctx context.Context) {
	if w.timeout <= 0 {
		w.logger.Info().Msg("idle auto-lock disabled")
		return
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.poll)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.lockIfIdle(workerCtx)
			}
		}
	}()
}

// Stop cancels the watcher and blocks until it has exited. Safe to call
// when the worker is not running.
func (w *IdleLockWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *IdleLockWorker) lockIfIdle(ctx context.Context) {
	if w.gate.State() != gate.StateAuthenticated {
		return
	}

	idle := w.now().Sub(w.gate.LastActivity())
	if idle < w.timeout {
		return
	}

	w.logger.Info().
		Dur("idle", idle).
		Dur("timeout", w.timeout).
		Msg("session idle, locking")
	w.gate.Logout(ctx)
}
