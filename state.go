// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// State effect for traversals that thread a state through assembly order.

// Stateful is the effect representation of the State applicative.
type Stateful[S any] func(S) (Erased, S)

// stateEffect implements Applicative over Stateful[S].
// Ap runs ff's transition before fa's.
type stateEffect[S any] struct{}

// StateEffect returns the applicative whose effects are Stateful[S].
func StateEffect[S any]() Applicative { return stateEffect[S]{} }

func (stateEffect[S]) Of(a Erased) Erased {
	return Stateful[S](func(s S) (Erased, S) { return a, s })
}

func (stateEffect[S]) Map(fa Erased, f func(Erased) Erased) Erased {
	m := fa.(Stateful[S])
	return Stateful[S](func(s S) (Erased, S) {
		a, s1 := m(s)
		return f(a), s1
	})
}

func (stateEffect[S]) Ap(ff, fa Erased) Erased {
	mf := ff.(Stateful[S])
	ma := fa.(Stateful[S])
	return Stateful[S](func(s S) (Erased, S) {
		f, s1 := mf(s)
		a, s2 := ma(s1)
		return f.(func(Erased) Erased)(a), s2
	})
}

// TraverseState is [Traverse] specialized to the State effect.
// Each handler sees the state reached after its children and returns the
// layer's rebuild function and the next state.
func TraverseState[S any](r *Recursion, handlers map[string]func(Fields, S) (Rebuild, S)) func(Value, S) (Value, S) {
	erased := make(TraverseHandlers, len(handlers))
	for tag, h := range handlers {
		if h == nil {
			continue
		}
		erased[tag] = func(f Fields) Erased {
			return Stateful[S](func(s S) (Erased, S) {
				rb, next := h(f, s)
				return rb, next
			})
		}
	}
	walk := Traverse(r, StateEffect[S](), erased)
	return func(v Value, initial S) (Value, S) {
		a, s := walk(v).(Stateful[S])(initial)
		return a.(Value), s
	}
}
