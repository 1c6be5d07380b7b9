// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"context"
)

// AwaitModel fetches the model from b, waiting until it is available.
//
// Client failures are returned unchanged, among them ErrUnsupportedVersion,
// ErrUnknownModel, ErrUnsupportedOperationConfiguration,
// ErrUnsupportedBuildArgument, ErrBuild, ErrBuildCancelled, ErrConnection
// and ErrConnectionClosed. If ctx is cancelled first, AwaitModel returns
// ctx.Err() and the fetch keeps running with its result discarded.
func AwaitModel[T any](ctx context.Context, b ModelBuilder[T], opts ...Option) (T, error) {
	return Exec(ctx, NewWaiter(opts...), PerformModel(b))
}

// AwaitAction runs the build action of e, waiting until its result is
// available. A failing action is reported as the client's
// ErrBuildActionFailure; see AwaitModel for the other failures.
func AwaitAction[T any](ctx context.Context, e BuildActionExecuter[T], opts ...Option) (T, error) {
	return Exec(ctx, NewWaiter(opts...), PerformAction(e))
}

// AwaitBuild runs the build of l, waiting until it completes.
// A nil error means the build succeeded.
func AwaitBuild(ctx context.Context, l BuildLauncher, opts ...Option) error {
	_, err := Exec(ctx, NewWaiter(opts...), PerformBuild(l))
	return err
}

// AwaitTests runs the tests of l, waiting until they complete.
// A nil error means every test passed. Failing tests and test runs that
// match nothing are reported as the client's ErrTestExecution and
// ErrNoMatchingTests.
func AwaitTests(ctx context.Context, l TestLauncher, opts ...Option) error {
	_, err := Exec(ctx, NewWaiter(opts...), PerformTests(l))
	return err
}

// GetModel fetches the model of type t from c, blocking until it is
// available. It is a convenience for c.GetModel(t.Name()) with the
// result asserted to T.
func GetModel[T any](c ProjectConnection, t ModelType[T]) (T, error) {
	v, err := c.GetModel(t.name)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.convert(v)
}

// Model returns a builder for the model of type t.
// A result of the wrong type fails with *ModelTypeError.
func Model[T any](c ProjectConnection, t ModelType[T]) ModelBuilder[T] {
	return typedBuilder[T]{inner: c.Model(t.name), t: t}
}

// AwaitProjectModel fetches the model of type t from c, waiting until it
// is available. It is a convenience for AwaitModel(ctx, Model(c, t)).
func AwaitProjectModel[T any](ctx context.Context, c ProjectConnection, t ModelType[T], opts ...Option) (T, error) {
	return AwaitModel(ctx, Model(c, t), opts...)
}
