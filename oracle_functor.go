// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Functor and container laws of the polynomial functor.

// CompositionScenario checks MapPositions(MapPositions(x, F), G) against
// MapPositions(x, G∘F) on the top layer of the seed's value.
// Positions compares mapped positions; nil selects the default
// (derived equality for Values, reflection otherwise).
type CompositionScenario[S any] struct {
	ID        string
	Seed      S
	F, G      func(Erased) Erased
	Positions Witness[Erased]
}

// MapPositionsScenario checks MapPositions(Project(v), F) against a
// caller-declared expectation computed from the projected layer.
type MapPositionsScenario[S any] struct {
	ID        string
	Seed      S
	F         func(Erased) Erased
	Expect    func(Variant) Variant
	Positions Witness[Erased]
}

func identityPosition(x Erased) Erased { return x }

// AnalyzeFunctorIdentity checks MapPositions(Project(v), id) == Project(v)
// field-wise for every seed.
func (o *Oracles[S]) AnalyzeFunctorIdentity(seeds []Seed[S]) Report {
	r := o.begin(OracleFunctorIdentity)
	p := o.t.poly
	for _, s := range seeds {
		v, ok := o.value(r, s)
		if !ok {
			continue
		}
		var projected, mapped Variant
		if !r.guard(s.ID, "project", func() {
			projected = p.Project(v)
			mapped = p.MapPositions(projected, identityPosition)
		}) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(s.ID, func() bool { return p.VariantEquals(projected, mapped, nil) })
		if ok && !equal {
			r.mismatch(s.ID, s.Value, projected, mapped, "mapping the identity changed the layer")
		}
	}
	r.report.Details["seeds"] = len(seeds)
	return o.finish(r)
}

// AnalyzeFunctorComposition checks that mapping F then G equals mapping G∘F.
func (o *Oracles[S]) AnalyzeFunctorComposition(scenarios []CompositionScenario[S]) Report {
	r := o.begin(OracleFunctorComposition)
	p := o.t.poly
	for _, sc := range scenarios {
		v, ok := o.value(r, Seed[S]{ID: sc.ID, Value: sc.Seed})
		if !ok {
			continue
		}
		var stepwise, composed Variant
		if !r.guard(sc.ID, "map", func() {
			x := p.Project(v)
			stepwise = p.MapPositions(p.MapPositions(x, sc.F), sc.G)
			composed = p.MapPositions(x, func(c Erased) Erased { return sc.G(sc.F(c)) })
		}) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(sc.ID, func() bool { return p.VariantEquals(composed, stepwise, sc.Positions) })
		if ok && !equal {
			r.mismatch(sc.ID, sc.Seed, composed, stepwise, "map(map(x, f), g) differs from map(x, g∘f)")
		}
	}
	r.report.Details["scenarios"] = len(scenarios)
	return o.finish(r)
}

// AnalyzeRoundtrip checks Embed(Project(v), id) == v with the derived equality.
func (o *Oracles[S]) AnalyzeRoundtrip(seeds []Seed[S]) Report {
	r := o.begin(OracleRoundtrip)
	p := o.t.poly
	for _, s := range seeds {
		v, ok := o.value(r, s)
		if !ok {
			continue
		}
		var back Value
		if !r.guard(s.ID, "embed", func() { back = p.Embed(p.Project(v), nil) }) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(s.ID, func() bool { return o.t.Equals(back, v) })
		if ok && !equal {
			r.mismatch(s.ID, s.Value, v, back, "embed(project(v)) differs from v")
		}
	}
	r.report.Details["seeds"] = len(seeds)
	return o.finish(r)
}

// AnalyzeMapPositions checks arbitrary caller-declared expectations of
// MapPositions on the top layer.
func (o *Oracles[S]) AnalyzeMapPositions(scenarios []MapPositionsScenario[S]) Report {
	r := o.begin(OracleMapPositions)
	p := o.t.poly
	for _, sc := range scenarios {
		v, ok := o.value(r, Seed[S]{ID: sc.ID, Value: sc.Seed})
		if !ok {
			continue
		}
		var actual, expected Variant
		if !r.guard(sc.ID, "map", func() { actual = p.MapPositions(p.Project(v), sc.F) }) {
			continue
		}
		if !r.guard(sc.ID, "expect", func() { expected = sc.Expect(p.Project(v)) }) {
			continue
		}
		r.report.Checked++
		equal, ok := r.equal(sc.ID, func() bool { return p.VariantEquals(expected, actual, sc.Positions) })
		if ok && !equal {
			r.mismatch(sc.ID, sc.Seed, expected, actual, "mapped layer differs from expectation")
		}
	}
	r.report.Details["scenarios"] = len(scenarios)
	return o.finish(r)
}
