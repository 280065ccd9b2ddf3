// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Rebuild turns a layer whose self positions hold traversed children back
// into a value.
type Rebuild func(Fields) Value

// TraverseHandlers maps every constructor to an effectful handler.
// The handler receives the raw payload of its layer and returns an
// effect, in the traversal's [Applicative], that yields a [Rebuild].
type TraverseHandlers map[string]func(Fields) Erased

// Traverse derives the effectful generalization of [Recursion.Map].
//
// For each layer the engine traverses the self positions first, in declared
// field order and post-order, then invokes the handler, and assembles
//
//	Of(assemble) <*> child₁ <*> … <*> childₙ <*> handler(fields)
//
// The assembly order is fixed; an asynchronous effect may schedule the
// underlying work concurrently without changing the result.
// Panics immediately if handlers is not exhaustive.
func Traverse(r *Recursion, app Applicative, handlers TraverseHandlers) func(Value) Erased {
	checkHandlers(r.t, "traverse", keys(handlers))
	var walk func(Value) Erased
	walk = func(v Value) Erased {
		c := r.t.lookup(v.tag)
		effects := make([]Erased, 0, len(c.self)+1)
		for _, name := range c.self {
			child, ok := v.fields[name].(Value)
			if !ok {
				usagePanic("%s: traverse reached a self position holding %T", r.t.schema.TypeName, v.fields[name])
			}
			effects = append(effects, walk(child))
		}
		effects = append(effects, handlers[v.tag](v.fields.clone()))
		return app.Map(collect(app, effects), func(xs Erased) Erased {
			parts := xs.([]Erased)
			fields := v.fields.clone()
			for i, name := range c.self {
				fields[name] = parts[i]
			}
			return asRebuild(parts[len(parts)-1])(fields)
		})
	}
	return walk
}

// Sequence reduces a layered structure whose fields already carry effects
// into one effect producing a whole value.
//
// Every value field of a layer holds an effect. A self position holds either
// a nested [Variant], which is sequenced recursively, or an effect producing
// a [Value]. Fields are combined with repeated Ap in declared field order.
func Sequence(r *Recursion, app Applicative) func(Variant) Erased {
	var walk func(Variant) Erased
	walk = func(x Variant) Erased {
		c := r.t.lookup(x.Tag)
		effects := make([]Erased, 0, len(c.order))
		for _, f := range c.desc.Fields {
			e, ok := x.Fields[f.Name]
			if !ok {
				usagePanic("%s.%s: sequence is missing field %q", r.t.schema.TypeName, x.Tag, f.Name)
			}
			if nested, ok := e.(Variant); ok && f.IsSelf() {
				e = walk(nested)
			}
			effects = append(effects, e)
		}
		return app.Map(collect(app, effects), func(xs Erased) Erased {
			parts := xs.([]Erased)
			fields := make(Fields, len(parts))
			for i, name := range c.order {
				fields[name] = parts[i]
			}
			return r.t.construct(c, fields)
		})
	}
	return walk
}

// asRebuild accepts either a Rebuild or a bare func(Fields) Value.
func asRebuild(x Erased) Rebuild {
	switch f := x.(type) {
	case Rebuild:
		return f
	case func(Fields) Value:
		return f
	case Constructor:
		return Rebuild(f)
	default:
		usagePanic("traverse handler produced %T, want Rebuild", x)
		return nil
	}
}
