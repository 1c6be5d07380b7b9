// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run runs two Cont-world await protocols side by side and returns both
// results. See RunExpr.
func Run[A, B any](ctx context.Context, a kont.Eff[A], b kont.Eff[B], opts ...Option) (A, B, error) {
	return RunExpr(ctx, Reify(a), Reify(b), opts...)
}

// RunExpr runs two Expr-world await protocols side by side, each on its
// own Waiter, and returns both results. Interleaves both sides on the
// calling goroutine using adaptive backoff (iox.Backoff) when neither
// side can make progress. Does not spawn goroutines or create channels.
//
// The first failure, or cancellation of ctx, detaches the other side
// and is returned.
func RunExpr[A, B any](ctx context.Context, a kont.Expr[A], b kont.Expr[B], opts ...Option) (A, B, error) {
	wA, wB := NewWaiter(opts...), NewWaiter(opts...)
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	fail := func(err error) (A, B, error) {
		if suspA != nil {
			wA.Cancel()
			suspA.Discard()
		}
		if suspB != nil {
			wB.Cancel()
			suspB.Discard()
		}
		var zeroA A
		var zeroB B
		return zeroA, zeroB, err
	}

	for suspA != nil || suspB != nil {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = Advance(wA, suspA)
			if err == nil {
				progress = true
			} else if !iox.IsWouldBlock(err) {
				return fail(err)
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = Advance(wB, suspB)
			if err == nil {
				progress = true
			} else if !iox.IsWouldBlock(err) {
				return fail(err)
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB, nil
}

// RunAll runs protocols side by side, each on its own Waiter, and returns
// their results in order. Outcomes may arrive in any order; each result
// lands at the index of the protocol that produced it.
// The first failure, or cancellation of ctx, detaches the remaining
// protocols and is returned.
func RunAll[R any](ctx context.Context, protocols []kont.Expr[R], opts ...Option) ([]R, error) {
	n := len(protocols)
	results := make([]R, n)
	waiters := make([]*Waiter, n)
	susps := make([]*kont.Suspension[R], n)
	live := 0
	for i, p := range protocols {
		waiters[i] = NewWaiter(opts...)
		results[i], susps[i] = Step[R](p)
		if susps[i] != nil {
			live++
		}
	}

	fail := func(err error) ([]R, error) {
		for i, s := range susps {
			if s != nil {
				waiters[i].Cancel()
				s.Discard()
			}
		}
		return nil, err
	}

	var bo iox.Backoff
	for live > 0 {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		progress := false
		for i, s := range susps {
			if s == nil {
				continue
			}
			var err error
			results[i], susps[i], err = Advance(waiters[i], s)
			if err != nil {
				if iox.IsWouldBlock(err) {
					continue
				}
				return fail(err)
			}
			progress = true
			if susps[i] == nil {
				live--
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return results, nil
}
