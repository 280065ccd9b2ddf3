// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Oracle names, as reported in [Report.Oracle].
const (
	OracleFunctorIdentity    = "functor-identity"
	OracleFunctorComposition = "functor-composition"
	OracleRoundtrip          = "roundtrip"
	OracleMapPositions       = "map-positions"
	OracleRecursion          = "recursion"
	OracleCoalgebra          = "coalgebra"
	OracleFoldUnfold         = "fold-unfold"
	OracleTraversal          = "traversal"
	OracleIndexes            = "indexes"
)

// SetupID keys failures that prevent an oracle from checking any seed.
const SetupID = "<setup>"

// ErrNotRecursive is recorded when a recursion oracle runs on a type
// without self fields.
var ErrNotRecursive = errors.New("adt: type has no self fields")

// ErrIncompleteScenario is recorded for a scenario missing a required function.
var ErrIncompleteScenario = errors.New("adt: incomplete scenario")

// Seed is one sampled input of an oracle.
type Seed[S any] struct {
	ID    string
	Value S
}

// Report is the outcome of one oracle run.
// Holds is true iff there are neither counterexamples nor failures.
type Report struct {
	Oracle          string
	RunID           string
	Holds           bool
	Checked         int
	Counterexamples []Counterexample
	Failures        []Failure
	Details         map[string]any
}

// Counterexample records a clean mismatch between expected and actual.
type Counterexample struct {
	ID       string
	Seed     any
	Expected any
	Actual   any
	Reason   string
}

// Failure records a panic raised by caller-supplied code, tied to the seed
// or scenario that triggered it.
type Failure struct {
	ID    string
	Stage string
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.ID, f.Stage, f.Err)
}

// Observer receives every finished report.
type Observer interface {
	ObserveReport(r Report, elapsed time.Duration)
}

// OracleOption configures [NewOracles].
type OracleOption func(*oracleConfig)

type oracleConfig struct {
	logger   *zap.Logger
	observer Observer
	runID    func() string
}

// WithLogger sets the logger for run summaries, counterexamples and failures.
func WithLogger(l *zap.Logger) OracleOption {
	return func(c *oracleConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an observer for finished reports.
func WithObserver(o Observer) OracleOption {
	return func(c *oracleConfig) { c.observer = o }
}

// WithRunID replaces the run id generator. The default is a random UUID.
func WithRunID(f func() string) OracleOption {
	return func(c *oracleConfig) {
		if f != nil {
			c.runID = f
		}
	}
}

// Oracles exercises the derived operations of a [Type] against seeds.
//
// Every analysis is pure from the caller's perspective: panics raised by
// build functions, algebras, coalgebras, handlers or scenario functions are
// recovered and reported as [Failure] records, and the batch continues with
// the remaining seeds. An Oracles value holds no per-run state and may be
// used from several goroutines at once.
type Oracles[S any] struct {
	t     *Type
	build func(S) Value
	cfg   oracleConfig
}

// NewOracles binds t to a function turning seeds into values.
func NewOracles[S any](t *Type, build func(S) Value, opts ...OracleOption) *Oracles[S] {
	cfg := oracleConfig{logger: zap.NewNop(), runID: uuid.NewString}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Oracles[S]{t: t, build: build, cfg: cfg}
}

// Type returns the algebraic data type under test.
func (o *Oracles[S]) Type() *Type { return o.t }

// run accumulates one report. It is local to a single oracle call.
type run struct {
	report Report
	start  time.Time
}

func (o *Oracles[S]) begin(oracle string) *run {
	return &run{
		report: Report{
			Oracle:  oracle,
			RunID:   o.cfg.runID(),
			Details: map[string]any{"type": o.t.Name()},
		},
		start: time.Now(),
	}
}

func (r *run) mismatch(id string, seed, expected, actual any, reason string) {
	r.report.Counterexamples = append(r.report.Counterexamples, Counterexample{
		ID:       id,
		Seed:     seed,
		Expected: expected,
		Actual:   actual,
		Reason:   reason,
	})
}

func (r *run) fail(id, stage string, err error) {
	r.report.Failures = append(r.report.Failures, Failure{ID: id, Stage: stage, Err: err})
}

// guard runs f and records a failure when it panics.
func (r *run) guard(id, stage string, f func()) bool {
	if err := capture(f); err != nil {
		r.fail(id, stage, err)
		return false
	}
	return true
}

// equal runs a comparison of caller witnesses under the "compare" stage.
// ok is false when the comparison panicked.
func (r *run) equal(id string, eq func() bool) (equal, ok bool) {
	ok = r.guard(id, "compare", func() { equal = eq() })
	return equal, ok
}

// value builds the value of a seed, recording a failure on panic.
func (o *Oracles[S]) value(r *run, s Seed[S]) (Value, bool) {
	var v Value
	ok := r.guard(s.ID, "build", func() { v = o.build(s.Value) })
	return v, ok
}

// recursion returns the engine or records a setup failure.
func (o *Oracles[S]) recursion(r *run) (*Recursion, bool) {
	rec, ok := o.t.Recursion()
	if !ok {
		r.fail(SetupID, "setup", ErrNotRecursive)
	}
	return rec, ok
}

func (o *Oracles[S]) finish(r *run) Report {
	rep := r.report
	rep.Holds = len(rep.Counterexamples) == 0 && len(rep.Failures) == 0
	elapsed := time.Since(r.start)

	log := o.cfg.logger.With(zap.String("oracle", rep.Oracle), zap.String("run_id", rep.RunID))
	for _, c := range rep.Counterexamples {
		log.Debug("counterexample",
			zap.String("id", c.ID),
			zap.String("reason", c.Reason),
			zap.Any("expected", c.Expected),
			zap.Any("actual", c.Actual))
	}
	for _, f := range rep.Failures {
		log.Debug("failure", zap.String("id", f.ID), zap.String("stage", f.Stage), zap.Error(f.Err))
	}
	log.Info("oracle finished",
		zap.String("type", o.t.Name()),
		zap.Bool("holds", rep.Holds),
		zap.Int("checked", rep.Checked),
		zap.Int("counterexamples", len(rep.Counterexamples)),
		zap.Int("failures", len(rep.Failures)),
		zap.Duration("elapsed", elapsed))

	if o.cfg.observer != nil {
		if err := capture(func() { o.cfg.observer.ObserveReport(rep, elapsed) }); err != nil {
			log.Warn("observer panicked", zap.Error(err))
		}
	}
	return rep
}
