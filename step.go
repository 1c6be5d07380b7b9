// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Step evaluates an await protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended await operation on the Waiter.
// The first Advance on a suspension starts the client operation;
// later calls poll it. DispatchAwait is non-blocking: Advance returns
// iox.ErrWouldBlock while the client has not called back.
//
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried.
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// Any other error is the client's failure, returned unchanged; the
// suspension is discarded and nil is returned in its place.
func Advance[R any](w *Waiter, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	aop, ok := susp.Op().(awaitDispatcher)
	if !ok {
		panic("tooling: unhandled effect in Advance")
	}
	v, err := aop.DispatchAwait(w)
	if err != nil {
		var zero R
		if iox.IsWouldBlock(err) {
			return zero, susp, err
		}
		susp.Discard()
		return zero, nil, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
