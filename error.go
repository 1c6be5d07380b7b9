// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import (
	"errors"
	"fmt"
)

// Failure classifications reported by the build-orchestration client.
// Operations in this package relay them untouched: the error a client
// passes to ResultHandler.OnFailure is the error the caller receives.
var (
	// ErrUnsupportedVersion: the target build tool version does not support the operation.
	ErrUnsupportedVersion = errors.New("tooling: unsupported version")
	// ErrUnknownModel: the target version or build does not support the requested model.
	ErrUnknownModel = errors.New("tooling: unknown model")
	// ErrUnsupportedOperationConfiguration: a requested configuration option is not supported.
	ErrUnsupportedOperationConfiguration = errors.New("tooling: unsupported operation configuration")
	// ErrUnsupportedBuildArgument: the supplied build arguments are invalid.
	ErrUnsupportedBuildArgument = errors.New("tooling: unsupported build argument")
	// ErrBuild: the build failed.
	ErrBuild = errors.New("tooling: build failed")
	// ErrBuildActionFailure: the build action failed with an error.
	ErrBuildActionFailure = errors.New("tooling: build action failed")
	// ErrTestExecution: one or more tests failed.
	ErrTestExecution = errors.New("tooling: test execution failed")
	// ErrNoMatchingTests: no tests were declared or none matched.
	ErrNoMatchingTests = errors.New("tooling: no matching tests")
	// ErrBuildCancelled: the operation was cancelled before it completed.
	ErrBuildCancelled = errors.New("tooling: build cancelled")
	// ErrConnection: any other failure using the connection.
	ErrConnection = errors.New("tooling: connection failure")
	// ErrConnectionClosed: the connection has been closed or is closing.
	ErrConnectionClosed = errors.New("tooling: connection closed")
)

// ErrModelType is matched by a *ModelTypeError.
var ErrModelType = errors.New("tooling: model type mismatch")

// ModelTypeError reports a model whose dynamic type differs from the
// type requested through a ModelType.
type ModelTypeError struct {
	Name string
	Want string
	Got  any
}

func (e *ModelTypeError) Error() string {
	return fmt.Sprintf("tooling: model %q is %T, want %s", e.Name, e.Got, e.Want)
}

// Is reports whether target is ErrModelType.
func (e *ModelTypeError) Is(target error) bool {
	return target == ErrModelType
}
