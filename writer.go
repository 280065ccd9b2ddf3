// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Writer effect for traversals that accumulate output (logging, tracing).

// Written is the effect representation of the Writer applicative:
// a value together with the output produced while computing it.
type Written[W any] struct {
	Value  Erased
	Output []W
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// writerEffect implements Applicative over Written[W].
// Ap appends the output of ff before the output of fa.
type writerEffect[W any] struct{}

// WriterEffect returns the applicative whose effects are Written[W].
func WriterEffect[W any]() Applicative { return writerEffect[W]{} }

// Tell lifts a value with output into the Writer effect.
func Tell[W any](v Erased, out ...W) Written[W] {
	return Written[W]{Value: v, Output: out}
}

func (writerEffect[W]) Of(a Erased) Erased { return Written[W]{Value: a} }

func (writerEffect[W]) Map(fa Erased, f func(Erased) Erased) Erased {
	w := fa.(Written[W])
	return Written[W]{Value: f(w.Value), Output: w.Output}
}

func (writerEffect[W]) Ap(ff, fa Erased) Erased {
	wf := ff.(Written[W])
	wa := fa.(Written[W])
	out := make([]W, 0, len(wf.Output)+len(wa.Output))
	out = append(out, wf.Output...)
	out = append(out, wa.Output...)
	return Written[W]{Value: wf.Value.(func(Erased) Erased)(wa.Value), Output: out}
}

// TraverseWriter is [Traverse] specialized to the Writer effect.
// Handlers return the layer's rebuild function and the output to emit.
// Output is concatenated in post-order, children before their parent.
func TraverseWriter[W any](r *Recursion, handlers map[string]func(Fields) (Rebuild, []W)) func(Value) Pair[Value, []W] {
	erased := make(TraverseHandlers, len(handlers))
	for tag, h := range handlers {
		if h == nil {
			continue
		}
		erased[tag] = func(f Fields) Erased {
			rb, out := h(f)
			return Written[W]{Value: rb, Output: out}
		}
	}
	walk := Traverse(r, WriterEffect[W](), erased)
	return func(v Value) Pair[Value, []W] {
		w := walk(v).(Written[W])
		return Pair[Value, []W]{Fst: w.Value.(Value), Snd: w.Output}
	}
}
