// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Reader effect for traversals.
// Reading[E] provides read-only access to an environment shared by every
// handler of one traversal.

// Reading is an effect that reads an environment of type E.
type Reading[E any] func(E) Erased

type readerEffect[E any] struct{}

// ReaderEffect returns the applicative over [Reading].
func ReaderEffect[E any]() Applicative { return readerEffect[E]{} }

func (readerEffect[E]) Of(a Erased) Erased {
	return Reading[E](func(E) Erased { return a })
}

func (readerEffect[E]) Map(fa Erased, f func(Erased) Erased) Erased {
	m := fa.(Reading[E])
	return Reading[E](func(env E) Erased { return f(m(env)) })
}

func (readerEffect[E]) Ap(ff, fa Erased) Erased {
	mf := ff.(Reading[E])
	ma := fa.(Reading[E])
	return Reading[E](func(env E) Erased {
		return mf(env).(func(Erased) Erased)(ma(env))
	})
}

// Ask returns the environment itself.
func Ask[E any]() Reading[E] {
	return func(env E) Erased { return env }
}

// TraverseReader is [Traverse] specialized to [ReaderEffect]. Every handler
// sees the same environment; the environment is supplied per run.
func TraverseReader[E any](r *Recursion, handlers map[string]func(Fields, E) Rebuild) func(Value, E) Value {
	erased := make(TraverseHandlers, len(handlers))
	for tag, h := range handlers {
		if h == nil {
			continue
		}
		erased[tag] = func(f Fields) Erased {
			return Reading[E](func(env E) Erased { return h(f, env) })
		}
	}
	walk := Traverse(r, ReaderEffect[E](), erased)
	return func(v Value, env E) Value {
		return walk(v).(Reading[E])(env).(Value)
	}
}

// ReaderEffectWitness compares effects of [ReaderEffect] by running both in env.
func ReaderEffectWitness[E any](env E, value Witness[Erased]) Witness[Erased] {
	return Erase[Reading[E]](WitnessFunc[Reading[E]](func(a, b Reading[E]) bool {
		return value.Equals(a(env), b(env))
	}))
}
