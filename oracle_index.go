// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "fmt"

// IndexScenario derives a second value from a seed's value whose cached
// indexes are checked the same way as the base value's.
type IndexScenario[S any] struct {
	ID        string
	Seed      S
	Transform func(Value) Value
}

// AnalyzeIndexes recomputes every declared index of every layer from the
// raw payload and compares it with the metadata cached at construction.
// Each seed's value is checked, then each scenario's transformed value.
func (o *Oracles[S]) AnalyzeIndexes(seeds []Seed[S], scenarios ...IndexScenario[S]) Report {
	r := o.begin(OracleIndexes)
	r.report.Details["seeds"] = len(seeds)
	r.report.Details["scenarios"] = len(scenarios)
	layers := 0
	check := func(id string, seed any, v Value) {
		var bad []indexMismatch
		if !r.guard(id, "recompute", func() { bad = o.recheck(v, &layers) }) {
			return
		}
		r.report.Checked++
		for _, m := range bad {
			r.mismatch(id, seed, m.want, m.got, m.reason)
		}
	}
	for _, s := range seeds {
		if v, ok := o.value(r, s); ok {
			check(s.ID, s.Value, v)
		}
	}
	for _, sc := range scenarios {
		v, ok := o.value(r, Seed[S]{ID: sc.ID, Value: sc.Seed})
		if !ok {
			continue
		}
		var moved Value
		if !r.guard(sc.ID, "transform", func() { moved = sc.Transform(v) }) {
			continue
		}
		check(sc.ID, sc.Seed, moved)
	}
	r.report.Details["layers"] = layers
	return o.finish(r)
}

type indexMismatch struct {
	want, got any
	reason    string
}

// recheck walks v depth-first and recomputes the indexes of every layer.
func (o *Oracles[S]) recheck(v Value, layers *int) []indexMismatch {
	var bad []indexMismatch
	var walk func(path string, v Value)
	walk = func(path string, v Value) {
		*layers++
		c := o.t.lookup(v.tag)
		for _, ix := range c.desc.Indexes {
			want := ix.Compute(v.fields.clone())
			got, ok := v.indexes[ix.Name]
			switch {
			case !ok:
				bad = append(bad, indexMismatch{want: want, reason: fmt.Sprintf("%s: index %q not cached", path, ix.Name)})
			case !ix.Witness.Equals(want, got):
				bad = append(bad, indexMismatch{want: want, got: got, reason: fmt.Sprintf("%s: index %q is stale", path, ix.Name)})
			}
		}
		for _, name := range c.self {
			if child, ok := v.fields[name].(Value); ok {
				walk(path+"."+name, child)
			}
		}
	}
	walk(v.tag, v)
	return bad
}
