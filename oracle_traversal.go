// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// TraversalScenario declares the expected effect of traversing one seed.
//
// Expected is used as is unless Expect is set, in which case Expect derives
// the expectation from the built value. Witness compares effects; it must
// understand the representation of Effect (see [EitherEffectWitness],
// [WriterEffectWitness] and [StateEffectWitness]).
type TraversalScenario[S any] struct {
	ID       string
	Seed     S
	Effect   Applicative
	Handlers TraverseHandlers
	Expected Erased
	Expect   func(Value) Erased
	Witness  Witness[Erased]
}

// AnalyzeTraversal runs [Traverse] for every scenario and compares the
// resulting effect with the declared expectation.
func (o *Oracles[S]) AnalyzeTraversal(scenarios []TraversalScenario[S]) Report {
	r := o.begin(OracleTraversal)
	r.report.Details["scenarios"] = len(scenarios)
	rec, ok := o.recursion(r)
	if !ok {
		return o.finish(r)
	}
	for _, sc := range scenarios {
		if sc.Effect == nil || sc.Witness == nil {
			r.fail(sc.ID, "setup", ErrIncompleteScenario)
			continue
		}
		v, ok := o.value(r, Seed[S]{ID: sc.ID, Value: sc.Seed})
		if !ok {
			continue
		}
		var actual Erased
		if !r.guard(sc.ID, "traverse", func() { actual = Traverse(rec, sc.Effect, sc.Handlers)(v) }) {
			continue
		}
		expected := sc.Expected
		if sc.Expect != nil && !r.guard(sc.ID, "expect", func() { expected = sc.Expect(v) }) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(sc.ID, func() bool { return sc.Witness.Equals(expected, actual) })
		if ok && !equal {
			r.mismatch(sc.ID, sc.Seed, expected, actual, "traversal produced an unexpected effect")
		}
	}
	return o.finish(r)
}

// EitherEffectWitness compares effects of [EitherEffect].
func EitherEffectWitness[E any](left Witness[E], right Witness[Erased]) Witness[Erased] {
	return Erase(EitherWitness(left, right))
}

// WriterEffectWitness compares effects of [WriterEffect]. A nil and an empty
// output are equal.
func WriterEffectWitness[W any](value Witness[Erased], out Witness[W]) Witness[Erased] {
	return Erase[Written[W]](WitnessFunc[Written[W]](func(a, b Written[W]) bool {
		if len(a.Output) != len(b.Output) {
			return false
		}
		for i := range a.Output {
			if !out.Equals(a.Output[i], b.Output[i]) {
				return false
			}
		}
		return value.Equals(a.Value, b.Value)
	}))
}

// StateEffectWitness compares effects of [StateEffect] by running both from
// initial and comparing the results and the final states.
func StateEffectWitness[S any](initial S, value Witness[Erased], state Witness[S]) Witness[Erased] {
	return Erase[Stateful[S]](WitnessFunc[Stateful[S]](func(a, b Stateful[S]) bool {
		x, sx := a(initial)
		y, sy := b(initial)
		return state.Equals(sx, sy) && value.Equals(x, y)
	}))
}
