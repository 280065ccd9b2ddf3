// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/adt"
	"github.com/stretchr/testify/assert"
)

func TestEqualsList(t *testing.T) {
	list := newList()
	l := fromSlice(list, []int{2, 1})
	assert.True(t, list.Equals(l, l))
	assert.True(t, list.Equals(l, fromSlice(list, []int{2, 1})))
	assert.False(t, list.Equals(l, fromSlice(list, []int{2, 0})), "differing witnessed field")
	assert.False(t, list.Equals(l, fromSlice(list, []int{2})), "differing subtree")
	assert.False(t, list.Equals(l, list.Make("Nil", nil)), "differing tag")
	assert.True(t, list.Witness().Equals(l, l))
}

func TestEqualsComparesIndexes(t *testing.T) {
	calls := 0
	typ := adt.MustNew(adt.Schema{TypeName: "Stamp", Constructors: []adt.ConstructorDescriptor{{
		Name:   "Stamp",
		Fields: []adt.FieldDescriptor{adt.ValueField("x", adt.Eq[int]())},
		Indexes: []adt.IndexDescriptor{{
			Name:    "serial",
			Witness: adt.Eq[int](),
			Compute: func(adt.Fields) adt.Erased { calls++; return calls },
		}},
	}}})
	a := typ.Make("Stamp", adt.Fields{"x": 1})
	b := typ.Make("Stamp", adt.Fields{"x": 1})
	assert.True(t, typ.Equals(a, a))
	assert.False(t, typ.Equals(a, b), "same fields but different cached indexes")
}

func TestErasedWitnessTypeMismatch(t *testing.T) {
	w := adt.Eq[int]()
	assert.True(t, w.Equals(1, 1))
	assert.False(t, w.Equals(1, 2))
	assert.False(t, w.Equals(1, "1"))
	assert.False(t, w.Equals("1", 1))

	d := adt.DeepEqual()
	assert.True(t, d.Equals([]int{1}, []int{1}))
	assert.False(t, d.Equals([]int{1}, []int{2}))

	custom := adt.WitnessFunc[string](func(a, b string) bool { return len(a) == len(b) })
	assert.True(t, adt.Erase[string](custom).Equals("ab", "cd"))
}

// TestPropertyEqualsReflexive: equals(v, v) for random trees.
func TestPropertyEqualsReflexive(t *testing.T) {
	tree := newTree()
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randTree(tree, rng, 5)
		if !tree.Equals(v, v) {
			t.Fatalf("equals(v, v) = false for %v", v)
		}
	}
}

// TestPropertyEqualsDetectsChangedLeaf: changing one leaf breaks equality.
func TestPropertyEqualsDetectsChangedLeaf(t *testing.T) {
	tree := newTree()
	rec, _ := tree.Recursion()
	bump := rec.Map(adt.MapHandlers{
		"Leaf": func(f adt.Fields) adt.Value {
			return tree.Make("Leaf", adt.Fields{"value": adt.Get[int](f, "value") + 1})
		},
		"Node": tree.Constructor("Node"),
	})
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randTree(tree, rng, 4)
		if tree.Equals(v, bump(v)) {
			t.Fatalf("equals(v, bump(v)) = true for %v", v)
		}
	}
}

func TestMatch(t *testing.T) {
	list := newList()
	describe := adt.Cases[string]{
		"Nil":  func(adt.Fields) string { return "empty" },
		"Cons": func(f adt.Fields) string { return "starts with " + string(rune('0'+adt.Get[int](f, "head"))) },
	}
	assert.Equal(t, "empty", adt.Match(list, list.Make("Nil", nil), describe))
	assert.Equal(t, "starts with 7", adt.Match(list, fromSlice(list, []int{7, 1}), describe))

	m := adt.Matcher(list, describe)
	assert.Equal(t, "empty", m(list.Make("Nil", nil)))
}

func TestMatchRejectsIncompleteCases(t *testing.T) {
	list := newList()
	nilOnly := adt.Cases[int]{"Nil": func(adt.Fields) int { return 0 }}
	assert.PanicsWithValue(t, `adt: List: match is missing a handler for "Cons"`, func() {
		adt.Match(list, list.Make("Nil", nil), nilOnly)
	})
	withNil := adt.Cases[int]{"Nil": func(adt.Fields) int { return 0 }, "Cons": nil}
	assert.PanicsWithValue(t, `adt: List: match is missing a handler for "Cons"`, func() {
		adt.Matcher(list, withNil)
	})
	extra := adt.Cases[int]{
		"Nil":  func(adt.Fields) int { return 0 },
		"Cons": func(adt.Fields) int { return 1 },
		"Snoc": func(adt.Fields) int { return 2 },
	}
	assert.PanicsWithValue(t, `adt: List: match names unknown constructor "Snoc"`, func() {
		adt.Matcher(list, extra)
	})
}

func TestMatchHandlerCannotMutateValue(t *testing.T) {
	list := newList()
	l := fromSlice(list, []int{1})
	adt.Match(list, l, adt.Cases[int]{
		"Nil":  func(adt.Fields) int { return 0 },
		"Cons": func(f adt.Fields) int { f["head"] = 100; return 0 },
	})
	assert.Equal(t, 1, adt.FieldOf[int](l, "head"))
}
