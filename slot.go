// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package tooling

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// slotCapacity is the bounded capacity of a pending result slot.
// A slot carries at most one outcome; the spare cell keeps the first
// delivery from ever finding the queue full.
const slotCapacity = 2

// resultSlot carries the one outcome of a pending operation from the
// client's callback goroutine to the owning Waiter.
type resultSlot[T any] struct {
	q lfq.SPSC[kont.Either[error, T]]
}

func (s *resultSlot[T]) init() {
	s.q.Init(slotCapacity)
}

// put publishes r. It fails only if the slot is already full.
func (s *resultSlot[T]) put(r *kont.Either[error, T]) error {
	return s.q.Enqueue(r)
}

// take returns the outcome, or iox.ErrWouldBlock while none is published.
func (s *resultSlot[T]) take() (kont.Either[error, T], error) {
	return s.q.Dequeue()
}
