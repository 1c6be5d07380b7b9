// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"log/slog"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
	"github.com/google/uuid"
)

// inflight is the type-erased view of a pending operation held by a Waiter.
type inflight interface {
	// poll returns the outcome if delivered, or iox.ErrWouldBlock.
	poll() (kont.Resumed, error)
	// detach releases the waiting caller; a later delivery is discarded.
	detach()
}

// pending links one waiting caller to the one-time outcome of a
// client callback. The client's callback goroutine is the only producer
// of slot and the owning Waiter is the only consumer.
type pending[T any] struct {
	id       uuid.UUID
	kind     Kind
	src      any
	serial   Serial
	start    time.Time
	logger   *slog.Logger
	recorder Recorder
	slot     resultSlot[T]
	fired    atomix.Uint32
	detached atomix.Uint32
}

func newPending[T any](w *Waiter, kind Kind, src any) *pending[T] {
	p := &pending[T]{
		id:       uuid.New(),
		kind:     kind,
		src:      src,
		serial:   w.serial,
		start:    time.Now(),
		logger:   w.logger,
		recorder: w.recorder,
	}
	p.slot.init()
	return p
}

// deliver stores the outcome reported through the Result Bridge.
// Only the first delivery counts. Any further delivery breaks the
// ResultHandler contract and is logged and recorded, never resumed.
func (p *pending[T]) deliver(r kont.Either[error, T]) {
	if p.fired.Add(1) != 1 {
		p.recorder.IncContractViolation(p.kind)
		p.logger.Error("tooling: result handler invoked more than once",
			"op", p.id, "kind", p.kind, "waiter", p.serial)
		return
	}
	if p.detached.Load() != 0 {
		p.recorder.IncLateDelivery(p.kind)
		p.logger.Debug("tooling: discarding result for detached caller",
			"op", p.id, "kind", p.kind, "waiter", p.serial)
		return
	}
	// The fired gate admits one delivery, so a full slot means the
	// single-outcome invariant is already broken.
	if err := p.slot.put(&r); err != nil {
		panic("tooling: pending result dropped: " + err.Error())
	}
}

func (p *pending[T]) poll() (kont.Resumed, error) {
	r, err := p.slot.take()
	if err != nil {
		return nil, err
	}
	if e, ok := r.GetLeft(); ok {
		p.recorder.ObserveFinished(p.kind, OutcomeFailure, time.Since(p.start))
		return nil, e
	}
	v, _ := r.GetRight()
	p.recorder.ObserveFinished(p.kind, OutcomeSuccess, time.Since(p.start))
	return v, nil
}

func (p *pending[T]) detach() {
	if p.detached.Add(1) != 1 {
		return
	}
	p.recorder.ObserveFinished(p.kind, OutcomeCancelled, time.Since(p.start))
	p.logger.Debug("tooling: caller detached from pending operation",
		"op", p.id, "kind", p.kind, "waiter", p.serial)
}
