// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"code.hybscloud.com/kont"
)

// PerformModel waits for the model produced by b.
func PerformModel[T any](b ModelBuilder[T]) kont.Eff[T] {
	return kont.Perform(FetchModel[T]{Builder: b})
}

// PerformAction waits for the result of the build action run by e.
func PerformAction[T any](e BuildActionExecuter[T]) kont.Eff[T] {
	return kont.Perform(RunAction[T]{Executer: e})
}

// PerformBuild waits for the build launched by l.
func PerformBuild(l BuildLauncher) kont.Eff[struct{}] {
	return kont.Perform(RunBuild{Launcher: l})
}

// PerformTests waits for the test run launched by l.
func PerformTests(l TestLauncher) kont.Eff[struct{}] {
	return kont.Perform(RunTests{Launcher: l})
}

// FetchModelBind waits for b's model and passes it to f.
// Fuses Perform(FetchModel[T]{}) + Bind.
func FetchModelBind[T, B any](b ModelBuilder[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(PerformModel(b), f)
}

// RunActionBind waits for e's result and passes it to f.
// Fuses Perform(RunAction[T]{}) + Bind.
func RunActionBind[T, B any](e BuildActionExecuter[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(PerformAction(e), f)
}

// RunBuildThen waits for the build and then continues with next.
// Fuses Perform(RunBuild{}) + Then.
func RunBuildThen[B any](l BuildLauncher, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(PerformBuild(l), next)
}

// RunTestsThen waits for the test run and then continues with next.
// Fuses Perform(RunTests{}) + Then.
func RunTestsThen[B any](l TestLauncher, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(PerformTests(l), next)
}
