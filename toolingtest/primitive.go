// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toolingtest

import (
	"sync"
	"time"

	"code.hybscloud.com/tooling"
)

type mode uint8

const (
	modeImmediate mode = iota
	modeReject
	modeDeferred
	modeAfter
	modeTwice
)

// Primitive is a scriptable client operation. It implements
// tooling.ModelBuilder and tooling.BuildActionExecuter for any T, and
// tooling.BuildLauncher and tooling.TestLauncher for T = struct{}.
type Primitive[T any] struct {
	mu      sync.Mutex
	mode    mode
	value   T
	err     error
	delay   time.Duration
	calls   int
	handler tooling.ResultHandler[T]
}

// Succeed returns a Primitive that calls OnComplete(v) before Get or Run returns.
func Succeed[T any](v T) *Primitive[T] {
	return &Primitive[T]{mode: modeImmediate, value: v}
}

// Fail returns a Primitive that calls OnFailure(err) before Get or Run returns.
func Fail[T any](err error) *Primitive[T] {
	return &Primitive[T]{mode: modeImmediate, err: err}
}

// Reject returns a Primitive whose Get and Run return err without
// accepting the handler.
func Reject[T any](err error) *Primitive[T] {
	return &Primitive[T]{mode: modeReject, err: err}
}

// Deferred returns a Primitive that captures the handler and waits for
// Complete or Fail.
func Deferred[T any]() *Primitive[T] {
	return &Primitive[T]{mode: modeDeferred}
}

// After returns a Primitive that reports its outcome from another
// goroutine once d has elapsed: OnFailure(err) if err is non-nil,
// OnComplete(v) otherwise.
func After[T any](d time.Duration, v T, err error) *Primitive[T] {
	return &Primitive[T]{mode: modeAfter, value: v, err: err, delay: d}
}

// Twice returns a Primitive that breaks the handler contract: it calls
// OnComplete(v), then OnFailure(err) if err is non-nil or OnComplete(v)
// again otherwise.
func Twice[T any](v T, err error) *Primitive[T] {
	return &Primitive[T]{mode: modeTwice, value: v, err: err}
}

// Get implements tooling.ModelBuilder.
func (p *Primitive[T]) Get(handler tooling.ResultHandler[T]) error {
	return p.start(handler)
}

// Run implements tooling.BuildActionExecuter, tooling.BuildLauncher and
// tooling.TestLauncher.
func (p *Primitive[T]) Run(handler tooling.ResultHandler[T]) error {
	return p.start(handler)
}

func (p *Primitive[T]) start(handler tooling.ResultHandler[T]) error {
	p.mu.Lock()
	p.calls++
	if p.mode == modeReject {
		p.mu.Unlock()
		return p.err
	}
	p.handler = handler
	m, v, err, d := p.mode, p.value, p.err, p.delay
	p.mu.Unlock()

	switch m {
	case modeImmediate:
		report(handler, v, err)
	case modeTwice:
		handler.OnComplete(v)
		report(handler, v, err)
	case modeAfter:
		time.AfterFunc(d, func() { report(handler, v, err) })
	}
	return nil
}

func report[T any](handler tooling.ResultHandler[T], v T, err error) {
	if err != nil {
		handler.OnFailure(err)
		return
	}
	handler.OnComplete(v)
}

// Complete calls OnComplete(v) on the captured handler.
// It reports false if no handler has been captured yet.
// Calling it more than once breaks the handler contract on purpose.
func (p *Primitive[T]) Complete(v T) bool {
	h := p.captured()
	if h == nil {
		return false
	}
	h.OnComplete(v)
	return true
}

// Fail calls OnFailure(err) on the captured handler.
// It reports false if no handler has been captured yet.
func (p *Primitive[T]) Fail(err error) bool {
	h := p.captured()
	if h == nil {
		return false
	}
	h.OnFailure(err)
	return true
}

// Started reports whether a handler has been captured.
func (p *Primitive[T]) Started() bool {
	return p.captured() != nil
}

// Calls returns how many times Get or Run has been called.
func (p *Primitive[T]) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *Primitive[T]) captured() tooling.ResultHandler[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handler
}
