// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "reflect"

// Erased represents a type-erased value crossing the schema boundary.
// Field payloads, self positions and effects are carried as Erased and
// recovered with type assertions where a typed API meets the engine.
type Erased = any

// Witness carries an equality predicate for values of type A.
// Every field, index and oracle scenario is parameterized by a Witness.
type Witness[A any] interface {
	Equals(a, b A) bool
}

// WitnessFunc adapts an ordinary function to a [Witness].
type WitnessFunc[A any] func(a, b A) bool

// Equals implements [Witness].
func (f WitnessFunc[A]) Equals(a, b A) bool { return f(a, b) }

// Comparable returns the witness for == on a comparable type.
func Comparable[A comparable]() Witness[A] {
	return WitnessFunc[A](func(a, b A) bool { return a == b })
}

// DeepEqual returns a witness backed by reflect.DeepEqual.
func DeepEqual() Witness[Erased] {
	return WitnessFunc[Erased](reflect.DeepEqual)
}

// erasedWitness lifts a typed witness to Erased values.
type erasedWitness[A any] struct{ w Witness[A] }

func (e erasedWitness[A]) Equals(a, b Erased) bool {
	x, ok := a.(A)
	if !ok {
		return false
	}
	y, ok := b.(A)
	if !ok {
		return false
	}
	return e.w.Equals(x, y)
}

// Erase lifts a typed witness to one over Erased values.
// The erased witness reports false when either side is not an A.
func Erase[A any](w Witness[A]) Witness[Erased] {
	if ew, ok := any(w).(Witness[Erased]); ok {
		return ew
	}
	return erasedWitness[A]{w: w}
}

// Eq is shorthand for Erase(Comparable[A]()), the usual witness for
// scalar fields.
func Eq[A comparable]() Witness[Erased] {
	return Erase(Comparable[A]())
}
