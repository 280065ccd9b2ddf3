// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// AnalyzeRecursion cross-validates [Recursion.Map] against a map derived
// only from the container: project a layer, map its positions with the
// derived map itself, run the handler, and embed the projected result.
// The two derivations share nothing but the handlers, so a handler that
// breaks the schema's field typing shows up as a counterexample.
func (o *Oracles[S]) AnalyzeRecursion(seeds []Seed[S], handlers MapHandlers) Report {
	r := o.begin(OracleRecursion)
	r.report.Details["seeds"] = len(seeds)
	rec, ok := o.recursion(r)
	if !ok {
		return o.finish(r)
	}
	var direct func(Value) Value
	if !r.guard(SetupID, "setup", func() { direct = rec.Map(handlers) }) {
		return o.finish(r)
	}
	p := rec.poly
	var derived func(Erased) Erased
	derived = func(x Erased) Erased {
		v, ok := x.(Value)
		if !ok {
			usagePanic("%s: derived map reached a self position holding %T", o.t.Name(), x)
		}
		layer := p.MapPositions(p.Project(v), derived)
		out := handlers[layer.Tag](layer.Fields)
		return p.Embed(p.Project(out), nil)
	}

	for _, s := range seeds {
		v, ok := o.value(r, s)
		if !ok {
			continue
		}
		var want, got Value
		if !r.guard(s.ID, "map", func() { want = direct(v) }) {
			continue
		}
		if !r.guard(s.ID, "derive", func() { got = derived(v).(Value) }) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(s.ID, func() bool { return o.t.Equals(want, got) })
		if ok && !equal {
			r.mismatch(s.ID, s.Value, want, got, "container-derived map disagrees with direct map")
		}
	}
	return o.finish(r)
}

// AnalyzeCoalgebra compares a manual step-by-step walk of coalg, which
// builds every layer through [Type.Make], with [Unfold].
func (o *Oracles[S]) AnalyzeCoalgebra(seeds []Seed[S], coalg Coalgebra[S]) Report {
	r := o.begin(OracleCoalgebra)
	r.report.Details["seeds"] = len(seeds)
	rec, ok := o.recursion(r)
	if !ok {
		return o.finish(r)
	}
	unfold := Unfold(rec, coalg)
	manual := walkSteps(o.t, coalg, o.t.Make)

	for _, s := range seeds {
		var want, got Value
		if !r.guard(s.ID, "walk", func() { want = manual(s.Value) }) {
			continue
		}
		if !r.guard(s.ID, "unfold", func() { got = unfold(s.Value) }) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(s.ID, func() bool { return o.t.Equals(want, got) })
		if ok && !equal {
			r.mismatch(s.ID, s.Value, want, got, "unfold disagrees with a manual coalgebra walk")
		}
	}
	return o.finish(r)
}

// AnalyzeFoldUnfold checks Fold(alg) after Unfold(coalg) against the
// hand-fused refold of the same pair, which never materializes the
// intermediate value. It samples one algebra/coalgebra pair; it proves
// nothing about other pairs.
func AnalyzeFoldUnfold[S, R any](o *Oracles[S], seeds []Seed[S], alg Algebra[R], coalg Coalgebra[S], w Witness[R]) Report {
	r := o.begin(OracleFoldUnfold)
	r.report.Details["seeds"] = len(seeds)
	rec, ok := o.recursion(r)
	if !ok {
		return o.finish(r)
	}
	var composed func(S) R
	if !r.guard(SetupID, "setup", func() {
		fold := Fold(rec, alg)
		unfold := Unfold(rec, coalg)
		composed = func(s S) R { return fold(unfold(s)) }
	}) {
		return o.finish(r)
	}
	refold := walkSteps(o.t, coalg, func(tag string, f Fields) R { return alg[tag](f) })

	for _, s := range seeds {
		var want, got R
		if !r.guard(s.ID, "refold", func() { want = refold(s.Value) }) {
			continue
		}
		if !r.guard(s.ID, "fold-unfold", func() { got = composed(s.Value) }) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(s.ID, func() bool { return w.Equals(want, got) })
		if ok && !equal {
			r.mismatch(s.ID, s.Value, want, got, "fold(unfold(seed)) disagrees with the fused refold")
		}
	}
	return o.finish(r)
}

// walkSteps runs coalg from a seed without going through [Unfold]. Every
// self position of a step is replaced by the walk of its child seed before
// layer receives the step's tag and fields.
func walkSteps[S, R any](t *Type, coalg Coalgebra[S], layer func(tag string, f Fields) R) func(S) R {
	var walk func(S) R
	walk = func(seed S) R {
		step := coalg(seed)
		c := t.lookup(step.Tag)
		fields := step.Fields.clone()
		for _, name := range c.self {
			child, ok := fields[name].(S)
			if !ok {
				usagePanic("%s.%s: step position %q holds %T", t.Name(), step.Tag, name, fields[name])
			}
			fields[name] = walk(child)
		}
		return layer(step.Tag, fields)
	}
	return walk
}
