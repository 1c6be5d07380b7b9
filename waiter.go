// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"context"
	"log/slog"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Waiter is the execution context of one waiting task.
// It owns at most one pending operation at a time and is not safe for
// concurrent use: run one protocol per Waiter. Advancing another
// protocol while an operation is pending panics; call Cancel first.
type Waiter struct {
	logger   *slog.Logger
	recorder Recorder
	serial   Serial
	current  inflight
}

// Option configures a Waiter.
type Option func(*Waiter)

// WithLogger sets the logger for contract violations and cancellations.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Waiter) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder. Defaults to NoopRecorder.
func WithRecorder(r Recorder) Option {
	return func(w *Waiter) {
		if r != nil {
			w.recorder = r
		}
	}
}

// NewWaiter creates a Waiter with a fresh serial.
func NewWaiter(opts ...Option) *Waiter {
	w := &Waiter{
		logger:   slog.Default(),
		recorder: NoopRecorder{},
		serial:   nextSerial(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serial returns the serial number assigned to this Waiter.
func (w *Waiter) Serial() Serial {
	return w.serial
}

// Pending reports whether a client operation has been started and its
// outcome not yet consumed.
func (w *Waiter) Pending() bool {
	return w.current != nil
}

// Cancel detaches the Waiter from its pending operation, if any.
// The client operation keeps running; its eventual outcome is discarded.
// The Waiter can then be reused for another protocol.
func (w *Waiter) Cancel() {
	if w.current == nil {
		return
	}
	w.current.detach()
	w.current = nil
}

// awaitDispatcher is the structural interface for await operations.
// DispatchAwait is non-blocking: it returns iox.ErrWouldBlock while the
// client has not yet delivered the outcome.
type awaitDispatcher interface {
	DispatchAwait(w *Waiter) (kont.Resumed, error)
}

// wait blocks until DispatchAwait yields an outcome, backing off on
// iox.ErrWouldBlock with iox.Backoff. Cancellation of ctx detaches the
// pending operation and returns ctx.Err().
func (w *Waiter) wait(ctx context.Context, op awaitDispatcher) (kont.Resumed, error) {
	if w.current == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	var bo iox.Backoff
	for {
		v, err := op.DispatchAwait(w)
		if err == nil {
			return v, nil
		}
		if !iox.IsWouldBlock(err) {
			return nil, err
		}
		if cerr := ctx.Err(); cerr != nil {
			w.Cancel()
			return nil, cerr
		}
		bo.Wait()
	}
}
