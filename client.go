// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

// ResultHandler receives the outcome of an asynchronous client operation.
// The client invokes exactly one of OnComplete or OnFailure, exactly once.
type ResultHandler[T any] interface {
	OnComplete(result T)
	OnFailure(err error)
}

// ModelBuilder fetches a model asynchronously.
// Get returns a non-nil error if the builder rejects the request before
// accepting handler; handler is then never invoked.
type ModelBuilder[T any] interface {
	Get(handler ResultHandler[T]) error
}

// BuildActionExecuter runs a build action asynchronously.
// Run returns a non-nil error if the executer rejects the request before
// accepting handler; handler is then never invoked.
type BuildActionExecuter[T any] interface {
	Run(handler ResultHandler[T]) error
}

// BuildLauncher runs a build asynchronously. The build produces no value.
type BuildLauncher interface {
	Run(handler ResultHandler[struct{}]) error
}

// TestLauncher runs tests asynchronously. The test run produces no value.
type TestLauncher interface {
	Run(handler ResultHandler[struct{}]) error
}

// ProjectConnection is a live session with the build-orchestration system.
// Models are addressed by name; see ModelType for the typed form.
type ProjectConnection interface {
	// GetModel fetches the named model, blocking until it is available.
	GetModel(name string) (any, error)
	// Model returns a builder for the named model.
	Model(name string) ModelBuilder[any]
}
