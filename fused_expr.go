// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is boxed once so Then frames do not allocate it.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprPerformModel waits for the model produced by b.
func ExprPerformModel[T any](b ModelBuilder[T]) kont.Expr[T] {
	return kont.ExprPerform(FetchModel[T]{Builder: b})
}

// ExprPerformAction waits for the result of the build action run by e.
func ExprPerformAction[T any](e BuildActionExecuter[T]) kont.Expr[T] {
	return kont.ExprPerform(RunAction[T]{Executer: e})
}

// ExprPerformBuild waits for the build launched by l.
func ExprPerformBuild(l BuildLauncher) kont.Expr[struct{}] {
	return kont.ExprPerform(RunBuild{Launcher: l})
}

// ExprPerformTests waits for the test run launched by l.
func ExprPerformTests(l TestLauncher) kont.Expr[struct{}] {
	return kont.ExprPerform(RunTests{Launcher: l})
}

func bindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	v, _ := current.(T) // nil resumes with the zero value
	result := f(v)
	return kont.Erased(result.Value), result.Frame
}

// exprBind suspends on op and passes its resumption value to f.
func exprBind[T, B any](op kont.Erased, f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = bindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// exprThen suspends on op and continues with next.
func exprThen[B any](op kont.Erased, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprFetchModelBind waits for b's model and passes it to f.
// Fuses ExprPerform(FetchModel[T]{}) + ExprBind.
func ExprFetchModelBind[T, B any](b ModelBuilder[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	return exprBind[T, B](FetchModel[T]{Builder: b}, f)
}

// ExprRunActionBind waits for e's result and passes it to f.
// Fuses ExprPerform(RunAction[T]{}) + ExprBind.
func ExprRunActionBind[T, B any](e BuildActionExecuter[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	return exprBind[T, B](RunAction[T]{Executer: e}, f)
}

// ExprRunBuildThen waits for the build and then continues with next.
// Fuses ExprPerform(RunBuild{}) + ExprThen.
func ExprRunBuildThen[B any](l BuildLauncher, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(RunBuild{Launcher: l}, next)
}

// ExprRunTestsThen waits for the test run and then continues with next.
// Fuses ExprPerform(RunTests{}) + ExprThen.
func ExprRunTestsThen[B any](l TestLauncher, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(RunTests{Launcher: l}, next)
}
