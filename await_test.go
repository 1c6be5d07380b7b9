// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"code.hybscloud.com/tooling"
	"code.hybscloud.com/tooling/toolingtest"
)

func TestAwaitModelSuccess(t *testing.T) {
	got, err := tooling.AwaitModel(context.Background(), toolingtest.Succeed("model-data"))
	if err != nil {
		t.Fatalf("AwaitModel error: %v", err)
	}
	if got != "model-data" {
		t.Fatalf("got %q, want %q", got, "model-data")
	}
}

func TestAwaitModelFailureRelayedUnchanged(t *testing.T) {
	_, err := tooling.AwaitModel(context.Background(), toolingtest.Fail[string](tooling.ErrUnknownModel))
	if err != tooling.ErrUnknownModel {
		t.Fatalf("got %v, want ErrUnknownModel itself", err)
	}
}

type buildFailure struct {
	task string
}

func (e *buildFailure) Error() string { return "task " + e.task + " failed" }

func TestAwaitActionFailureKeepsConcreteType(t *testing.T) {
	cause := &buildFailure{task: ":app:compile"}
	_, err := tooling.AwaitAction(context.Background(), toolingtest.Fail[int](cause))
	var bf *buildFailure
	if !errors.As(err, &bf) || bf != cause {
		t.Fatalf("got %v, want the original *buildFailure", err)
	}
}

func TestAwaitActionSuccess(t *testing.T) {
	got, err := tooling.AwaitAction(context.Background(), toolingtest.Succeed(42))
	if err != nil {
		t.Fatalf("AwaitAction error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestAwaitBuild(t *testing.T) {
	l := toolingtest.Succeed(struct{}{})
	if err := tooling.AwaitBuild(context.Background(), l); err != nil {
		t.Fatalf("AwaitBuild error: %v", err)
	}
	if l.Calls() != 1 {
		t.Fatalf("launcher ran %d times, want 1", l.Calls())
	}

	err := tooling.AwaitBuild(context.Background(), toolingtest.Fail[struct{}](tooling.ErrBuild))
	if err != tooling.ErrBuild {
		t.Fatalf("got %v, want ErrBuild", err)
	}
}

func TestAwaitTestsNoMatchingTests(t *testing.T) {
	err := tooling.AwaitTests(context.Background(), toolingtest.Fail[struct{}](tooling.ErrNoMatchingTests))
	if !errors.Is(err, tooling.ErrNoMatchingTests) {
		t.Fatalf("got %v, want ErrNoMatchingTests", err)
	}
	if errors.Is(err, tooling.ErrTestExecution) {
		t.Fatal("no matching tests must stay distinct from test execution failure")
	}
	if err := tooling.AwaitTests(context.Background(), toolingtest.Succeed(struct{}{})); err != nil {
		t.Fatalf("AwaitTests error: %v", err)
	}
}

func TestAwaitSynchronousSetupFailure(t *testing.T) {
	rec := newCountingRecorder()
	p := toolingtest.Reject[string](tooling.ErrUnsupportedBuildArgument)

	done := make(chan error, 1)
	go func() {
		_, err := tooling.AwaitModel(context.Background(), p, tooling.WithRecorder(rec))
		done <- err
	}()
	select {
	case err := <-done:
		if err != tooling.ErrUnsupportedBuildArgument {
			t.Fatalf("got %v, want ErrUnsupportedBuildArgument", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("synchronous setup failure hung the caller")
	}
	if p.Started() {
		t.Fatal("rejected primitive must not capture the handler")
	}
	if n := rec.outcomes(tooling.OutcomeFailure); n != 1 {
		t.Fatalf("failure outcomes = %d, want 1", n)
	}
}

func TestAwaitAsyncDelivery(t *testing.T) {
	got, err := tooling.AwaitModel(context.Background(), toolingtest.After(5*time.Millisecond, "later", nil))
	if err != nil {
		t.Fatalf("AwaitModel error: %v", err)
	}
	if got != "later" {
		t.Fatalf("got %q, want %q", got, "later")
	}

	err = tooling.AwaitBuild(context.Background(), toolingtest.After(5*time.Millisecond, struct{}{}, tooling.ErrBuildCancelled))
	if err != tooling.ErrBuildCancelled {
		t.Fatalf("got %v, want ErrBuildCancelled", err)
	}
}

// TestAwaitAsyncDeliveryRepeated hands outcomes from timer goroutines to
// the waiting caller many times over; under -race it checks the handoff.
func TestAwaitAsyncDeliveryRepeated(t *testing.T) {
	type payload struct{ a, b int }
	for i := range 200 {
		want := payload{i, i}
		got, err := tooling.AwaitModel(context.Background(), toolingtest.After(100*time.Microsecond, want, nil))
		if err != nil {
			t.Fatalf("iteration %d: AwaitModel error: %v", i, err)
		}
		if got != want {
			t.Fatalf("iteration %d: got %v, want %v", i, got, want)
		}
	}
}

func TestAwaitSecondInvocationFlagged(t *testing.T) {
	rec := newCountingRecorder()
	logger, logs := testLogger()

	got, err := tooling.AwaitModel(context.Background(),
		toolingtest.Twice("first", tooling.ErrConnection),
		tooling.WithRecorder(rec), tooling.WithLogger(logger))
	if err != nil {
		t.Fatalf("caller observed the second outcome: %v", err)
	}
	if got != "first" {
		t.Fatalf("got %q, want %q", got, "first")
	}
	if n := rec.count(rec.violations, tooling.KindModel); n != 1 {
		t.Fatalf("contract violations = %d, want 1", n)
	}
	if !strings.Contains(logs.String(), "invoked more than once") {
		t.Fatalf("violation not logged: %q", logs.String())
	}
}

func TestAwaitTwiceSuccessResumesOnce(t *testing.T) {
	rec := newCountingRecorder()
	l := toolingtest.Twice(struct{}{}, nil)
	if err := tooling.AwaitBuild(context.Background(), l, tooling.WithRecorder(rec)); err != nil {
		t.Fatalf("AwaitBuild error: %v", err)
	}
	if n := rec.outcomes(tooling.OutcomeSuccess); n != 1 {
		t.Fatalf("success outcomes = %d, want 1", n)
	}
	if n := rec.count(rec.violations, tooling.KindBuild); n != 1 {
		t.Fatalf("contract violations = %d, want 1", n)
	}
}

func TestAwaitCancelledBeforeCallback(t *testing.T) {
	rec := newCountingRecorder()
	p := toolingtest.Deferred[string]()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := tooling.AwaitModel(ctx, p, tooling.WithRecorder(rec))
		done <- err
	}()
	waitStarted(t, p.Started)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancellation did not release the caller")
	}

	// Late callback is a no-op for the departed caller.
	if !p.Complete("too late") {
		t.Fatal("deferred primitive lost its handler")
	}
	if n := rec.count(rec.late, tooling.KindModel); n != 1 {
		t.Fatalf("late deliveries = %d, want 1", n)
	}
	if n := rec.outcomes(tooling.OutcomeCancelled); n != 1 {
		t.Fatalf("cancelled outcomes = %d, want 1", n)
	}
	if n := rec.count(rec.violations, tooling.KindModel); n != 0 {
		t.Fatalf("late delivery counted as violation %d times", n)
	}
}

func TestAwaitCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := toolingtest.Succeed("unused")
	_, err := tooling.AwaitModel(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if p.Calls() != 0 {
		t.Fatalf("builder called %d times after cancellation, want 0", p.Calls())
	}
}

func TestAwaitDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := tooling.AwaitTests(ctx, toolingtest.Deferred[struct{}]())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
}
