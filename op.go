// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"reflect"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// FetchModel is the effect operation for fetching a model of type T.
// Perform(FetchModel[T]{Builder: b}) waits for b's result.
type FetchModel[T any] struct {
	kont.Phantom[T]
	Builder ModelBuilder[T]
}

// DispatchAwait starts the fetch on first dispatch and polls it after.
// Non-blocking: returns iox.ErrWouldBlock until the builder calls back.
func (o FetchModel[T]) DispatchAwait(w *Waiter) (kont.Resumed, error) {
	return dispatchAwait(w, KindModel, o.Builder, o.Builder.Get)
}

// RunAction is the effect operation for running a build action that
// produces a value of type T.
type RunAction[T any] struct {
	kont.Phantom[T]
	Executer BuildActionExecuter[T]
}

// DispatchAwait starts the action on first dispatch and polls it after.
// Non-blocking: returns iox.ErrWouldBlock until the executer calls back.
func (o RunAction[T]) DispatchAwait(w *Waiter) (kont.Resumed, error) {
	return dispatchAwait(w, KindAction, o.Executer, o.Executer.Run)
}

// RunBuild is the effect operation for running a build.
// It resumes with struct{}{} on success.
type RunBuild struct {
	kont.Phantom[struct{}]
	Launcher BuildLauncher
}

// DispatchAwait starts the build on first dispatch and polls it after.
func (o RunBuild) DispatchAwait(w *Waiter) (kont.Resumed, error) {
	return dispatchAwait(w, KindBuild, o.Launcher, o.Launcher.Run)
}

// RunTests is the effect operation for running tests.
// It resumes with struct{}{} on success.
type RunTests struct {
	kont.Phantom[struct{}]
	Launcher TestLauncher
}

// DispatchAwait starts the test run on first dispatch and polls it after.
func (o RunTests) DispatchAwait(w *Waiter) (kont.Resumed, error) {
	return dispatchAwait(w, KindTests, o.Launcher, o.Launcher.Run)
}

// dispatchAwait drives one client primitive on w.
// The first call hands a Result Bridge to start. If start rejects it,
// the error is returned as is and nothing is left pending. Later calls
// poll the pending slot until the outcome arrives.
//
// src is the client primitive behind start. Polling an operation the
// Waiter did not start panics: the caller would otherwise resume with
// another protocol's outcome.
func dispatchAwait[T any](w *Waiter, kind Kind, src any, start func(ResultHandler[T]) error) (kont.Resumed, error) {
	if w.current == nil {
		p := newPending[T](w, kind, src)
		w.recorder.IncStarted(kind)
		if err := start(resultBridge[T]{p: p}); err != nil {
			w.recorder.ObserveFinished(kind, OutcomeFailure, 0)
			return nil, err
		}
		w.current = p
	}
	p, ok := w.current.(*pending[T])
	if !ok || p.kind != kind || !sameSource(p.src, src) {
		panic("tooling: waiter polled by an operation it did not start; run one protocol per Waiter")
	}
	v, err := p.poll()
	if err != nil && iox.IsWouldBlock(err) {
		return nil, err
	}
	w.current = nil
	return v, err
}

// sameSource reports whether a and b are the same client primitive.
// Values of a type that cannot be compared match on type alone.
func sameSource(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	if !va.Comparable() || !vb.Comparable() {
		return true
	}
	return va.Equal(vb)
}
