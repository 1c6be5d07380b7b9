// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tooling_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/tooling"
)

// countingRecorder counts Recorder events per kind.
type countingRecorder struct {
	mu         sync.Mutex
	started    map[tooling.Kind]int
	finished   map[tooling.Outcome]int
	violations map[tooling.Kind]int
	late       map[tooling.Kind]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		started:    make(map[tooling.Kind]int),
		finished:   make(map[tooling.Outcome]int),
		violations: make(map[tooling.Kind]int),
		late:       make(map[tooling.Kind]int),
	}
}

func (r *countingRecorder) IncStarted(kind tooling.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started[kind]++
}

func (r *countingRecorder) ObserveFinished(_ tooling.Kind, outcome tooling.Outcome, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished[outcome]++
}

func (r *countingRecorder) IncContractViolation(kind tooling.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations[kind]++
}

func (r *countingRecorder) IncLateDelivery(kind tooling.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.late[kind]++
}

func (r *countingRecorder) count(m map[tooling.Kind]int, kind tooling.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return m[kind]
}

func (r *countingRecorder) outcomes(o tooling.Outcome) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished[o]
}

// syncBuffer is a bytes.Buffer safe for a logger shared across goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// testLogger returns a debug-level text logger writing to the returned buffer.
func testLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// waitStarted spins until started reports true or the deadline passes.
func waitStarted(t *testing.T, started func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !started() {
		if time.Now().After(deadline) {
			t.Fatal("client operation was never started")
		}
		time.Sleep(time.Millisecond)
	}
}
