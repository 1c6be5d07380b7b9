// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tooling turns the callback-driven operations of a build-orchestration
// client into waiting calls, via algebraic effects on [code.hybscloud.com/kont].
//
// The client reports each asynchronous operation through a [ResultHandler],
// calling OnComplete or OnFailure exactly once. This package hands the client a
// Result Bridge for that handler and suspends the caller until the bridge fires.
//
// # Architecture
//
//   - Result slot: each pending operation owns a bounded SPSC queue from
//     [code.hybscloud.com/lfq]. The client's callback is its only producer, the
//     waiting [Waiter] its only consumer. Builds with -race publish through an
//     atomic pointer instead, which the race detector can follow.
//   - Non-blocking: polling a pending operation returns
//     [code.hybscloud.com/iox.ErrWouldBlock] until the client calls back.
//   - At most once: a second callback is a contract violation. It is logged,
//     counted by the [Recorder] and never reaches the caller.
//   - Relay: client failures reach the caller unchanged, with no wrapping.
//   - Cancellation: cooperative. Cancelling the caller detaches it from the
//     pending operation; the client operation itself keeps running.
//
// # API Topologies
//
//   - Blocking: [AwaitModel], [AwaitAction], [AwaitBuild], [AwaitTests], [AwaitProjectModel].
//   - Typed lookup: [ModelType], [GetModel], [Model].
//   - Operations: [FetchModel], [RunAction], [RunBuild], [RunTests].
//   - Cont-world: [PerformModel], [FetchModelBind], [RunActionBind], [RunBuildThen], [RunTestsThen].
//   - Expr-world: [ExprPerformModel], [ExprFetchModelBind], etc. Bridge via [Reify] and [Reflect].
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate a protocol one effect at a time,
//     making it easy to drive waits from a caller-owned event loop.
//   - Blocking: [Exec], [ExecExpr], [Run], [RunExpr] and [RunAll] wait past
//     boundaries using adaptive backoff and observe context cancellation.
//
// # Example
//
//	gradleBuild := tooling.NewModelType[*GradleBuild]("GradleBuild")
//	build, err := tooling.AwaitProjectModel(ctx, conn, gradleBuild)
//	if err != nil {
//		if errors.Is(err, tooling.ErrUnknownModel) {
//			// the target build does not expose the model
//		}
//		return err
//	}
package tooling
