// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling

import "time"

// Kind identifies the client primitive behind a pending operation.
type Kind uint8

const (
	KindModel  Kind = iota // model fetch through a ModelBuilder
	KindAction             // build action through a BuildActionExecuter
	KindBuild              // build through a BuildLauncher
	KindTests              // test run through a TestLauncher
)

// String returns the metric label for k.
func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindAction:
		return "action"
	case KindBuild:
		return "build"
	case KindTests:
		return "tests"
	}
	return "unknown"
}

// Outcome is how a waiting caller was released.
type Outcome uint8

const (
	OutcomeSuccess   Outcome = iota // client called OnComplete
	OutcomeFailure                  // client failed or rejected the operation
	OutcomeCancelled                // caller detached before the outcome
)

// String returns the metric label for o.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Recorder receives observability events from a Waiter.
// Methods may be called from the client's callback goroutine.
type Recorder interface {
	// IncStarted counts a client operation handed a Result Bridge.
	IncStarted(kind Kind)
	// ObserveFinished records how and after how long the caller was released.
	ObserveFinished(kind Kind, outcome Outcome, d time.Duration)
	// IncContractViolation counts a result handler invoked more than once.
	IncContractViolation(kind Kind)
	// IncLateDelivery counts an outcome discarded because the caller detached.
	IncLateDelivery(kind Kind)
}

// NoopRecorder is the Recorder used when none is configured.
type NoopRecorder struct{}

// IncStarted implements Recorder.
func (NoopRecorder) IncStarted(Kind) {}

// ObserveFinished implements Recorder.
func (NoopRecorder) ObserveFinished(Kind, Outcome, time.Duration) {}

// IncContractViolation implements Recorder.
func (NoopRecorder) IncContractViolation(Kind) {}

// IncLateDelivery implements Recorder.
func (NoopRecorder) IncLateDelivery(Kind) {}
