// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListScenario walks the canonical Nil/Cons example end to end.
func TestListScenario(t *testing.T) {
	list := newList()
	rec, ok := list.Recursion()
	require.True(t, ok)
	nilV := list.Make("Nil", nil)
	l := list.Make("Cons", adt.Fields{
		"head": 2,
		"tail": list.Make("Cons", adt.Fields{"head": 1, "tail": nilV}),
	})

	assert.True(t, list.Equals(l, l))

	sum := adt.Fold(rec, sumAlgebra())
	assert.Equal(t, 3, sum(l))

	times10 := rec.Map(adt.MapHandlers{
		"Nil": func(adt.Fields) adt.Value { return list.Make("Nil", nil) },
		"Cons": func(f adt.Fields) adt.Value {
			return list.Make("Cons", adt.Fields{"head": adt.Get[int](f, "head") * 10, "tail": f["tail"]})
		},
	})
	assert.Equal(t, 30, sum(times10(l)))

	x := list.Polynomial().Project(l)
	assert.Equal(t, "Cons", x.Tag)
	tail, ok := x.Fields["tail"].(adt.Value)
	require.True(t, ok)
	assert.Equal(t, "Cons", tail.Tag())

	unfold := adt.Unfold(rec, func(seed int) adt.Step {
		if seed == 0 {
			return adt.Step{Tag: "Nil", Fields: adt.Fields{}}
		}
		return adt.Step{Tag: "Cons", Fields: adt.Fields{"head": seed, "tail": seed - 1}}
	})
	assert.True(t, list.Equals(l, unfold(2)))
}

func TestFoldIsPostOrder(t *testing.T) {
	tree := newTree()
	rec, _ := tree.Recursion()
	var visited []string
	labels := adt.Fold(rec, adt.Algebra[string]{
		"Leaf": func(f adt.Fields) string {
			s := string(rune('0' + adt.Get[int](f, "value")))
			visited = append(visited, s)
			return s
		},
		"Node": func(f adt.Fields) string {
			l := adt.Get[string](f, "label")
			visited = append(visited, l)
			return "(" + adt.Get[string](f, "left") + l + adt.Get[string](f, "right") + ")"
		},
	})
	leaf := func(n int) adt.Value { return tree.Make("Leaf", adt.Fields{"value": n}) }
	v := tree.Make("Node", adt.Fields{
		"left":  tree.Make("Node", adt.Fields{"left": leaf(1), "label": "a", "right": leaf(2)}),
		"label": "b",
		"right": leaf(3),
	})
	assert.Equal(t, "((1a2)b3)", labels(v))
	assert.Equal(t, []string{"1", "2", "a", "3", "b"}, visited)
}

func TestFoldRejectsIncompleteAlgebra(t *testing.T) {
	rec, _ := newList().Recursion()
	assert.PanicsWithValue(t, `adt: List: algebra is missing a handler for "Cons"`, func() {
		adt.Fold(rec, adt.Algebra[int]{"Nil": func(adt.Fields) int { return 0 }})
	})
	assert.PanicsWithValue(t, `adt: List: map is missing a handler for "Nil"`, func() {
		rec.Map(adt.MapHandlers{"Cons": newList().Constructor("Cons")})
	})
}

func TestUnfoldRejectsWrongSeed(t *testing.T) {
	list := newList()
	rec, _ := list.Recursion()
	bad := adt.Unfold(rec, func(n int) adt.Step {
		return adt.Step{Tag: "Cons", Fields: adt.Fields{"head": n, "tail": "oops"}}
	})
	assert.PanicsWithValue(t, "adt: List: coalgebra produced a self position holding string, want int", func() { bad(1) })
}

func TestRebuilderIsIdentity(t *testing.T) {
	tree := newTree()
	rec, _ := tree.Recursion()
	id := rec.Map(rec.Rebuilder())
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randTree(tree, rng, 4)
		if !tree.Equals(v, id(v)) {
			t.Fatalf("rebuild changed %v", v)
		}
	}
}

// TestPropertyFoldUnfold: fold(sum)(unfold(countdown)(n)) ≡ n(n+1)/2
func TestPropertyFoldUnfold(t *testing.T) {
	rec, _ := newList().Recursion()
	sum := adt.Fold(rec, sumAlgebra())
	unfold := adt.Unfold(rec, countdown)
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(50)
		if got, want := sum(unfold(n)), n*(n+1)/2; got != want {
			t.Fatalf("fold(unfold(%d)) = %d, want %d", n, got, want)
		}
	}
}

// TestPropertyMapFusion: map(f) after map(g) ≡ map(f∘g) on list heads.
func TestPropertyMapFusion(t *testing.T) {
	list := newList()
	rec, _ := list.Recursion()
	mapHead := func(f func(int) int) func(adt.Value) adt.Value {
		h := rec.Rebuilder()
		h["Cons"] = func(fs adt.Fields) adt.Value {
			return list.Make("Cons", fs.With("head", f(adt.Get[int](fs, "head"))))
		}
		return rec.Map(h)
	}
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }
	sep := func(v adt.Value) adt.Value { return mapHead(dbl)(mapHead(inc)(v)) }
	fused := mapHead(func(x int) int { return dbl(inc(x)) })
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := fromSlice(list, randInts(rng, 0))
		if a, b := sep(v), fused(v); !list.Equals(a, b) {
			t.Fatalf("fusion: %v != %v", a, b)
		}
	}
}
