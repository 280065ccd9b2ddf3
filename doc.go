// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package adt declares algebraic data types from data-driven schemas and
// mechanically derives their operations.
//
// A [Schema] names a closed set of constructors, each with ordered fields and
// optional computed indexes. [New] validates the schema once and returns a
// [Type] bundling constructor factories, pattern dispatch, structural
// equality, a polynomial functor container and, for self-recursive schemas,
// recursion schemes. The [Oracles] subsystem samples seeds and checks the
// derived operations against their laws, reporting counterexamples instead
// of asserting.
//
// # Design Philosophy
//
// adt provides:
//   - Runtime schemas with closed-world dispatch: unknown tags and
//     non-exhaustive handler sets panic before any handler runs
//   - A single equality contract, [Witness], for fields, indexes and oracles
//   - One polynomial container from which every recursion scheme is derived
//
// # Type Erasure
//
// Payloads are type-erased. [Erased] is an alias for any and marks the
// boundary; concrete types are recovered with [Get] and [FieldOf].
//
//   - [Witness]: Equality contract, Equals(a, b A) bool
//   - [WitnessFunc]: Witness from a function
//   - [Comparable], [Eq]: Witnesses from ==
//   - [DeepEqual]: Reflection-based witness
//   - [Erase]: Lift a typed witness to [Erased] (false on type mismatch)
//
// # Schemas
//
//   - [Schema], [ConstructorDescriptor], [FieldDescriptor], [IndexDescriptor]
//   - [ValueField], [SelfField], [ParamField]: Field shorthands
//   - [RecursionNone], [RecursionSelf], [RecursionForeign]: Field markers
//   - [New], [MustNew]: Validate and build a [Type]
//   - [SchemaError]: Validation failure wrapping one of [ErrEmptySchema],
//     [ErrDuplicateName], [ErrMissingWitness], [ErrInvalidRecursion],
//     [ErrMissingCompute] or [ErrParameter]
//
// # Values
//
// A [Value] is immutable. Its indexes are computed once, at construction,
// from the raw payload of its own level.
//
//   - [Type.Constructor], [Type.Constructors], [Type.Make]: Factories
//   - [Value.Tag], [Value.Field], [Value.Fields]: Accessors
//   - [Value.Index], [Value.Indexes]: Cached index metadata
//   - [Type.Equals], [Type.Witness]: Derived structural equality
//   - [Match], [Matcher], [Cases]: Exhaustive dispatch
//   - [Type.Introspect]: Read-only reflection of the schema
//
// # Polynomial Container
//
// A schema with constructors C₁…Cₙ is the functor
// X ↦ Σᵢ (values of Cᵢ) × X^(self positions of Cᵢ).
//
//   - [Polynomial.Container]: Summand shapes
//   - [Polynomial.Project]: One layer of a value, children unreduced
//   - [Polynomial.Embed]: Inverse of Project, with a self-position hook
//   - [Polynomial.MapPositions]: Functor action on self positions
//   - [Polynomial.VariantEquals]: Layer equality
//   - [Polynomial.Vertical], [Polynomial.Horizontal],
//     [Polynomial.WhiskerLeft], [Polynomial.WhiskerRight]: Natural
//     transformation adapters
//
// # Recursion Schemes
//
// Available only when some constructor declares a self field; see
// [Type.Recursion].
//
//   - [Fold]: Catamorphism of an [Algebra], post-order
//   - [Unfold]: Anamorphism of a [Coalgebra], top-down
//   - [Recursion.Map]: Bottom-up rebuild with [MapHandlers]
//   - [Traverse]: Effectful map over an [Applicative]
//   - [Sequence]: Collapse a layered structure of effects
//
// # Effects
//
// [Traverse] assembles Of(rebuild) <*> child₁ <*> … <*> handler in a fixed
// order, whatever the effect.
//
//   - [IdentityEffect]: No effect
//   - [EitherEffect], [TraverseEither], [SequenceEither]: Short-circuit on Left
//   - [TraverseFallible]: [TraverseEither] with Go error returns
//   - [WriterEffect], [TraverseWriter], [Tell]: Accumulate output
//   - [StateEffect], [TraverseState]: Thread state
//   - [ReaderEffect], [TraverseReader], [Ask]: Shared read-only environment
//   - [TraverseAsync]: Concurrent handlers with errgroup, deterministic assembly
//
// # Families
//
//   - [NewFamily]: Validate a parameterized schema
//   - [Family.Instantiate]: Resolve parameters to witnesses; a fresh [Type] per call
//
// # Oracles
//
// Every analysis returns a [Report]. Panics raised by caller code become
// [Failure] records; clean mismatches become [Counterexample] records.
//
//   - [Oracles.AnalyzeFunctorIdentity], [Oracles.AnalyzeFunctorComposition]
//   - [Oracles.AnalyzeRoundtrip], [Oracles.AnalyzeMapPositions]
//   - [Oracles.AnalyzeRecursion], [Oracles.AnalyzeCoalgebra], [AnalyzeFoldUnfold]
//   - [Oracles.AnalyzeTraversal], [Oracles.AnalyzeIndexes]
//   - [EitherEffectWitness], [WriterEffectWitness], [StateEffectWitness],
//     [ReaderEffectWitness]: Effect-aware witnesses for traversal scenarios
//   - [SampleSeeds]: Deterministic PCG seed sampling
//   - [WithLogger], [WithObserver], [WithRunID]: Reporting hooks
//
// # Example
//
//	list := adt.MustNew(adt.Schema{
//		TypeName: "List",
//		Constructors: []adt.ConstructorDescriptor{
//			{Name: "Nil"},
//			{Name: "Cons", Fields: []adt.FieldDescriptor{
//				adt.ValueField("head", adt.Eq[int]()),
//				adt.SelfField("tail"),
//			}},
//		},
//	})
//	rec, _ := list.Recursion()
//	sum := adt.Fold(rec, adt.Algebra[int]{
//		"Nil":  func(adt.Fields) int { return 0 },
//		"Cons": func(f adt.Fields) int { return adt.Get[int](f, "head") + adt.Get[int](f, "tail") },
//	})
//	// sum(l) folds the heads of l
package adt
