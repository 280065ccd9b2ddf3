// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "fmt"

// Either represents a value that is either Left (error) or Right (success).
// It is the effect of fallible traversals.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool { return e.isRight }

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool { return !e.isRight }

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// EitherWitness lifts witnesses for both sides to a witness over Either.
func EitherWitness[E, A any](left Witness[E], right Witness[A]) Witness[Either[E, A]] {
	return WitnessFunc[Either[E, A]](func(a, b Either[E, A]) bool {
		return MatchEither(a,
			func(x E) bool {
				y, ok := b.GetLeft()
				return ok && left.Equals(x, y)
			},
			func(x A) bool {
				y, ok := b.GetRight()
				return ok && right.Equals(x, y)
			})
	})
}

// eitherEffect is the fail-fast applicative over Either[E, Erased].
// Ap keeps the first Left in assembly order.
type eitherEffect[E any] struct{}

// EitherEffect returns the applicative whose effects are Either[E, Erased].
func EitherEffect[E any]() Applicative { return eitherEffect[E]{} }

func (eitherEffect[E]) Of(a Erased) Erased { return Right[E](a) }

func (eitherEffect[E]) Map(fa Erased, f func(Erased) Erased) Erased {
	return MapEither(fa.(Either[E, Erased]), f)
}

func (eitherEffect[E]) Ap(ff, fa Erased) Erased {
	return FlatMapEither(ff.(Either[E, Erased]), func(f Erased) Either[E, Erased] {
		return MapEither(fa.(Either[E, Erased]), f.(func(Erased) Erased))
	})
}

// eraseRight widens the Right side of an Either to Erased.
func eraseRight[E, A any](e Either[E, A]) Either[E, Erased] {
	return MapEither(e, func(a A) Erased { return a })
}

// TraverseEither is [Traverse] specialized to fallible handlers.
// The first Left in post-order assembly order is the result.
func TraverseEither[E any](r *Recursion, handlers map[string]func(Fields) Either[E, Rebuild]) func(Value) Either[E, Value] {
	erased := make(TraverseHandlers, len(handlers))
	for tag, h := range handlers {
		if h == nil {
			continue
		}
		erased[tag] = func(f Fields) Erased { return eraseRight(h(f)) }
	}
	walk := Traverse(r, EitherEffect[E](), erased)
	return func(v Value) Either[E, Value] {
		return MapEither(walk(v).(Either[E, Erased]), func(x Erased) Value { return x.(Value) })
	}
}

// SequenceEither is [Sequence] specialized to Either. Value fields of each
// layer hold Either[E, Erased].
func SequenceEither[E any](r *Recursion) func(Variant) Either[E, Value] {
	walk := Sequence(r, EitherEffect[E]())
	return func(x Variant) Either[E, Value] {
		return MapEither(walk(x).(Either[E, Erased]), func(x Erased) Value { return x.(Value) })
	}
}

// TraverseFallible is [TraverseEither] with Go error returns. A handler
// error comes back wrapped with the tag of the constructor that raised it.
func TraverseFallible(r *Recursion, handlers map[string]func(Fields) (Rebuild, error)) func(Value) (Value, error) {
	lifted := make(map[string]func(Fields) Either[error, Rebuild], len(handlers))
	for tag, h := range handlers {
		if h == nil {
			continue
		}
		lifted[tag] = func(f Fields) Either[error, Rebuild] {
			rb, err := h(f)
			e := Right[error](rb)
			if err != nil {
				e = Left[error, Rebuild](err)
			}
			return MapLeftEither(e, func(err error) error {
				return fmt.Errorf("%s.%s: %w", r.t.Name(), tag, err)
			})
		}
	}
	walk := TraverseEither(r, lifted)
	return func(v Value) (Value, error) {
		res := walk(v)
		if err, ok := res.GetLeft(); ok {
			return Value{}, err
		}
		out, _ := res.GetRight()
		return out, nil
	}
}
