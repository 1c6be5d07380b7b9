// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"code.hybscloud.com/kont"
)

// resultBridge adapts the two-callback ResultHandler protocol to the
// single outcome slot of a pending operation. It holds no other state.
type resultBridge[T any] struct {
	p *pending[T]
}

// OnComplete resumes the waiting caller with result.
func (b resultBridge[T]) OnComplete(result T) {
	b.p.deliver(kont.Right[error, T](result))
}

// OnFailure resumes the waiting caller with err, unchanged.
func (b resultBridge[T]) OnFailure(err error) {
	b.p.deliver(kont.Left[error, T](err))
}

// Reify converts a Cont-world await protocol to Expr-world.
// The resulting Expr can be evaluated with ExecExpr, RunExpr,
// or stepped with Step and Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world await protocol to Cont-world.
// The resulting Eff can be evaluated with Exec or Run.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
