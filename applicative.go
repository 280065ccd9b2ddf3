// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Applicative is the effect abstraction used by [Traverse] and [Sequence].
//
// Go has no higher-kinded types, so effects are type-erased: an F[A] is an
// Erased value whose concrete representation is chosen by the
// implementation, and functions inside effects are func(Erased) Erased.
// Typed entry points ([TraverseEither], [TraverseWriter], [TraverseState],
// [TraverseAsync]) wrap the erased engine for each concrete effect.
//
// Implementations must satisfy the applicative laws; Ap must run the effect
// of ff before the effect of fa.
type Applicative interface {
	// Of lifts a pure value.
	Of(a Erased) Erased
	// Map applies a pure function inside the effect.
	Map(fa Erased, f func(Erased) Erased) Erased
	// Ap applies an effectful function to an effectful argument.
	Ap(ff, fa Erased) Erased
}

// identityEffect is the applicative with no effect: F[A] = A.
type identityEffect struct{}

// IdentityEffect returns the identity applicative. Traversing with it
// coincides with [Recursion.Map].
func IdentityEffect() Applicative { return identityEffect{} }

func (identityEffect) Of(a Erased) Erased { return a }

func (identityEffect) Map(fa Erased, f func(Erased) Erased) Erased { return f(fa) }

func (identityEffect) Ap(ff, fa Erased) Erased { return ff.(func(Erased) Erased)(fa) }

// collect combines effects left to right into an effect of their results,
// using only Of, Map and Ap. The assembly order is the slice order.
func collect(app Applicative, effects []Erased) Erased {
	acc := app.Of([]Erased{})
	for _, e := range effects {
		acc = app.Ap(app.Map(acc, appendTo), e)
	}
	return acc
}

// appendTo curries append without sharing the prefix's backing array, so
// effects that replay a function (nondeterminism, retries) stay independent.
func appendTo(xs Erased) Erased {
	prefix := xs.([]Erased)
	return func(x Erased) Erased {
		return append(prefix[:len(prefix):len(prefix)], x)
	}
}
