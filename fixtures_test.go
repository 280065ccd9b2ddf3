// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"math/rand/v2"

	"code.hybscloud.com/adt"
)

const propertyN = 200

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randInts returns a random slice of length [0, 8].
func randInts(rng *rand.Rand, _ int) []int {
	xs := make([]int, rng.IntN(9))
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return xs
}

// newList builds List = Nil | Cons{head: int, tail: List}.
func newList() *adt.Type {
	return adt.MustNew(adt.Schema{
		TypeName: "List",
		Constructors: []adt.ConstructorDescriptor{
			{Name: "Nil"},
			{Name: "Cons", Fields: []adt.FieldDescriptor{
				adt.ValueField("head", adt.Eq[int]()),
				adt.SelfField("tail"),
			}},
		},
	})
}

// newSizedList is List with a cached "size" index on every level.
func newSizedList() *adt.Type {
	size := adt.Eq[int]()
	return adt.MustNew(adt.Schema{
		TypeName: "SizedList",
		Constructors: []adt.ConstructorDescriptor{
			{Name: "Nil", Indexes: []adt.IndexDescriptor{{
				Name:    "size",
				Witness: size,
				Compute: func(adt.Fields) adt.Erased { return 0 },
			}}},
			{Name: "Cons",
				Fields: []adt.FieldDescriptor{
					adt.ValueField("head", adt.Eq[int]()),
					adt.SelfField("tail"),
				},
				Indexes: []adt.IndexDescriptor{{
					Name:    "size",
					Witness: size,
					Compute: func(f adt.Fields) adt.Erased {
						n, _ := adt.Get[adt.Value](f, "tail").Index("size")
						return n.(int) + 1
					},
				}},
			},
		},
	})
}

// newTree builds Tree = Leaf{value: int} | Node{left: Tree, label: string, right: Tree}.
func newTree() *adt.Type {
	return adt.MustNew(adt.Schema{
		TypeName: "Tree",
		Constructors: []adt.ConstructorDescriptor{
			{Name: "Leaf", Fields: []adt.FieldDescriptor{
				adt.ValueField("value", adt.Eq[int]()),
			}},
			{Name: "Node", Fields: []adt.FieldDescriptor{
				adt.SelfField("left"),
				adt.ValueField("label", adt.Eq[string]()),
				adt.SelfField("right"),
			}},
		},
	})
}

func fromSlice(t *adt.Type, xs []int) adt.Value {
	v := t.Make("Nil", nil)
	for i := len(xs) - 1; i >= 0; i-- {
		v = t.Make("Cons", adt.Fields{"head": xs[i], "tail": v})
	}
	return v
}

func toSlice(t *adt.Type) func(adt.Value) []int {
	rec, _ := t.Recursion()
	return adt.Fold(rec, adt.Algebra[[]int]{
		"Nil": func(adt.Fields) []int { return []int{} },
		"Cons": func(f adt.Fields) []int {
			return append([]int{adt.Get[int](f, "head")}, adt.Get[[]int](f, "tail")...)
		},
	})
}

func sumAlgebra() adt.Algebra[int] {
	return adt.Algebra[int]{
		"Nil":  func(adt.Fields) int { return 0 },
		"Cons": func(f adt.Fields) int { return adt.Get[int](f, "head") + adt.Get[int](f, "tail") },
	}
}

// countdown unfolds n into n, n-1, ..., 1.
func countdown(n int) adt.Step {
	if n <= 0 {
		return adt.Step{Tag: "Nil", Fields: adt.Fields{}}
	}
	return adt.Step{Tag: "Cons", Fields: adt.Fields{"head": n, "tail": n - 1}}
}

// randTree builds a random tree of depth at most depth.
func randTree(t *adt.Type, rng *rand.Rand, depth int) adt.Value {
	if depth == 0 || rng.IntN(3) == 0 {
		return t.Make("Leaf", adt.Fields{"value": randInt(rng)})
	}
	return t.Make("Node", adt.Fields{
		"left":  randTree(t, rng, depth-1),
		"label": string(rune('a' + rng.IntN(26))),
		"right": randTree(t, rng, depth-1),
	})
}
