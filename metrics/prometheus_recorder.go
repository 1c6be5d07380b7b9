// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics exports tooling.Recorder events as Prometheus metrics.
package metrics

import (
	"time"

	"code.hybscloud.com/tooling"
	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "tooling"

// PrometheusRecorder implements tooling.Recorder using Prometheus metrics.
// A nil *PrometheusRecorder records nothing.
type PrometheusRecorder struct {
	started    *prom.CounterVec
	inflight   *prom.GaugeVec
	finished   *prom.CounterVec
	duration   *prom.HistogramVec
	violations *prom.CounterVec
	late       *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		started: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "operations_started_total",
			Help:      "Client operations started, by kind",
		}, []string{"kind"}),
		inflight: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "operations_inflight",
			Help:      "Client operations with a caller still waiting, by kind",
		}, []string{"kind"}),
		finished: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "operations_finished_total",
			Help:      "Waiting callers released, by kind and outcome",
		}, []string{"kind", "outcome"}),
		duration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_wait_seconds",
			Help:      "Time a caller waited for a client operation",
			Buckets:   prom.DefBuckets,
		}, []string{"kind", "outcome"}),
		violations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "contract_violations_total",
			Help:      "Result handlers invoked more than once, by kind",
		}, []string{"kind"}),
		late: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "late_deliveries_total",
			Help:      "Results discarded because the caller had detached, by kind",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.started, pr.inflight, pr.finished, pr.duration, pr.violations, pr.late)
	return pr
}

// IncStarted counts the operation and marks it in flight.
func (p *PrometheusRecorder) IncStarted(kind tooling.Kind) {
	if p == nil {
		return
	}
	p.started.WithLabelValues(kind.String()).Inc()
	p.inflight.WithLabelValues(kind.String()).Inc()
}

// ObserveFinished clears the in-flight mark and records outcome and wait time.
func (p *PrometheusRecorder) ObserveFinished(kind tooling.Kind, outcome tooling.Outcome, d time.Duration) {
	if p == nil {
		return
	}
	p.inflight.WithLabelValues(kind.String()).Dec()
	p.finished.WithLabelValues(kind.String(), outcome.String()).Inc()
	p.duration.WithLabelValues(kind.String(), outcome.String()).Observe(d.Seconds())
}

// IncContractViolation counts a result handler invoked more than once.
func (p *PrometheusRecorder) IncContractViolation(kind tooling.Kind) {
	if p == nil {
		return
	}
	p.violations.WithLabelValues(kind.String()).Inc()
}

// IncLateDelivery counts an outcome discarded after the caller detached.
func (p *PrometheusRecorder) IncLateDelivery(kind tooling.Kind) {
	if p == nil {
		return
	}
	p.late.WithLabelValues(kind.String()).Inc()
}
