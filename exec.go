// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"context"

	"code.hybscloud.com/kont"
)

// awaitHandler implements kont.Handler for await effects.
// Waits on iox.ErrWouldBlock and short-circuits with Left on the
// first failure or cancellation.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type awaitHandler[R any] struct {
	ctx context.Context
	w   *Waiter
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h awaitHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	aop, ok := op.(awaitDispatcher)
	if !ok {
		panic("tooling: unhandled effect in awaitHandler")
	}
	v, err := h.w.wait(h.ctx, aop)
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// Exec runs a Cont-world await protocol on w until it completes, fails
// or ctx is cancelled. Between polls it backs off with iox.Backoff,
// without spawning goroutines or creating channels.
//
// A client failure is returned unchanged. On cancellation the pending
// client operation is detached, not interrupted, and ctx.Err() is returned.
func Exec[R any](ctx context.Context, w *Waiter, protocol kont.Eff[R]) (R, error) {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := awaitHandler[R]{ctx: ctx, w: w}
	return fromEither(kont.Handle(wrapped, h))
}

// ExecExpr runs an Expr-world await protocol on w.
// Semantics match Exec.
func ExecExpr[R any](ctx context.Context, w *Waiter, protocol kont.Expr[R]) (R, error) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := awaitHandler[R]{ctx: ctx, w: w}
	return fromEither(kont.HandleExpr(wrapped, h))
}

func fromEither[R any](e kont.Either[error, R]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, err
	}
	r, _ := e.GetRight()
	return r, nil
}
