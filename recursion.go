// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Recursion is the recursion-scheme engine of a self-recursive [Type].
// Obtain it with [Type.Recursion].
//
// Values are assumed to be finite trees. Cycles and aliasing are not
// detected, and a non-terminating coalgebra never returns.
type Recursion struct {
	t    *Type
	poly *Polynomial
}

// Type returns the algebraic data type the engine operates on.
func (r *Recursion) Type() *Type { return r.t }

// Algebra maps every constructor to a handler that combines one layer whose
// self positions are already reduced to R.
type Algebra[R any] map[string]func(Fields) R

// Coalgebra expands a seed into one layer. Self positions of the returned
// step hold seeds of type S.
type Coalgebra[S any] func(S) Step

// Step is one layer produced by a [Coalgebra].
type Step struct {
	Tag    string
	Fields Fields
}

// MapHandlers maps every constructor to a handler that rebuilds one layer.
// Self positions of the handler's input are already mapped.
type MapHandlers map[string]func(Fields) Value

// Fold derives the catamorphism of alg.
//
// The traversal is depth-first post-order: self positions are reduced first
// in declared field order, then the handler for the tag runs on the layer
// with the results substituted. Panics immediately if alg is not exhaustive.
func Fold[R any](r *Recursion, alg Algebra[R]) func(Value) R {
	checkHandlers(r.t, "algebra", keys(alg))
	var fold func(Value) R
	reduce := func(child Erased) Erased {
		v, ok := child.(Value)
		if !ok {
			usagePanic("%s: fold reached a self position holding %T", r.t.schema.TypeName, child)
		}
		return fold(v)
	}
	fold = func(v Value) R {
		layer := r.poly.MapPositions(r.poly.Project(v), reduce)
		return alg[layer.Tag](layer.Fields)
	}
	return fold
}

// Unfold derives the anamorphism of coalg.
//
// Expansion is top-down: coalg runs on a seed, the seeds in its self
// positions are expanded in declared field order, then the layer is
// constructed. There is no termination guard.
func Unfold[S any](r *Recursion, coalg Coalgebra[S]) func(S) Value {
	var unfold func(S) Value
	expand := func(child Erased) Erased {
		s, ok := child.(S)
		if !ok {
			var zero S
			usagePanic("%s: coalgebra produced a self position holding %T, want %T", r.t.schema.TypeName, child, zero)
		}
		return unfold(s)
	}
	unfold = func(seed S) Value {
		step := coalg(seed)
		return r.poly.Embed(Variant(step), expand)
	}
	return unfold
}

// Map derives the bottom-up endofunctor action of handlers.
//
// Self positions are mapped recursively before the handler for the tag
// rebuilds the layer. Panics immediately if handlers is not exhaustive.
func (r *Recursion) Map(handlers MapHandlers) func(Value) Value {
	checkHandlers(r.t, "map", keys(handlers))
	var walk func(Value) Value
	walk = func(v Value) Value {
		c := r.t.lookup(v.tag)
		fields := v.fields.clone()
		for _, name := range c.self {
			child, ok := fields[name].(Value)
			if !ok {
				usagePanic("%s: map reached a self position holding %T", r.t.schema.TypeName, fields[name])
			}
			fields[name] = walk(child)
		}
		return handlers[v.tag](fields)
	}
	return walk
}

// Rebuilder returns map handlers that rebuild each layer unchanged with
// the constructor factories. Used as a starting point for partial maps.
func (r *Recursion) Rebuilder() MapHandlers {
	h := make(MapHandlers, len(r.t.ctors))
	for _, c := range r.t.ctors {
		h[c.desc.Name] = r.t.factories[c.desc.Name]
	}
	return h
}
