// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package oraclemetrics exports oracle reports as Prometheus metrics.
package oraclemetrics

import (
	"time"

	"code.hybscloud.com/adt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of the runs counter.
const (
	OutcomeHolds          = "holds"
	OutcomeCounterexample = "counterexample"
	OutcomeFailure        = "failure"
)

// Collector records finished oracle runs. It implements [adt.Observer];
// register it with [adt.WithObserver].
type Collector struct {
	Runs            *prometheus.CounterVec
	Checked         *prometheus.CounterVec
	Counterexamples *prometheus.CounterVec
	Failures        *prometheus.CounterVec
	Duration        *prometheus.HistogramVec
}

// New creates a Collector with all metrics registered on reg.
// A nil reg registers on the default registry.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Collector{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adt_oracle_runs_total",
			Help: "Total oracle runs by oracle and outcome",
		}, []string{"oracle", "outcome"}),

		Checked: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adt_oracle_checked_total",
			Help: "Total seeds and scenarios compared by oracle",
		}, []string{"oracle"}),

		Counterexamples: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adt_oracle_counterexamples_total",
			Help: "Total counterexamples reported by oracle",
		}, []string{"oracle"}),

		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "adt_oracle_failures_total",
			Help: "Total failures recovered from caller code by oracle and stage",
		}, []string{"oracle", "stage"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "adt_oracle_duration_seconds",
			Help:    "Duration of oracle runs",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"oracle"}),
	}
}

// ObserveReport records one finished run.
func (c *Collector) ObserveReport(r adt.Report, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(r.Oracle, Outcome(r)).Inc()
	c.Checked.WithLabelValues(r.Oracle).Add(float64(r.Checked))
	if n := len(r.Counterexamples); n > 0 {
		c.Counterexamples.WithLabelValues(r.Oracle).Add(float64(n))
	}
	for _, f := range r.Failures {
		c.Failures.WithLabelValues(r.Oracle, f.Stage).Inc()
	}
	c.Duration.WithLabelValues(r.Oracle).Observe(elapsed.Seconds())
}

// Outcome classifies a report. Failures take precedence over counterexamples.
func Outcome(r adt.Report) string {
	switch {
	case len(r.Failures) > 0:
		return OutcomeFailure
	case len(r.Counterexamples) > 0:
		return OutcomeCounterexample
	default:
		return OutcomeHolds
	}
}

var _ adt.Observer = (*Collector)(nil)
