// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package tooling

import (
	"errors"
	"sync/atomic"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

var errSlotFull = errors.New("tooling: result slot full")

// resultSlot is the race-build result slot. The race detector tracks
// happens-before per variable and cannot see lfq's cross-variable
// ordering, so outcomes are published through a single atomic pointer.
type resultSlot[T any] struct {
	v atomic.Pointer[kont.Either[error, T]]
}

func (s *resultSlot[T]) init() {}

func (s *resultSlot[T]) put(r *kont.Either[error, T]) error {
	if !s.v.CompareAndSwap(nil, r) {
		return errSlotFull
	}
	return nil
}

func (s *resultSlot[T]) take() (kont.Either[error, T], error) {
	r := s.v.Swap(nil)
	if r == nil {
		var zero kont.Either[error, T]
		return zero, iox.ErrWouldBlock
	}
	return *r, nil
}
