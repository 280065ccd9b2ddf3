// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/adt"
)

func benchList(n int) (*adt.Type, adt.Value) {
	list := newList()
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return list, fromSlice(list, xs)
}

// BenchmarkMake measures constructing one Cons cell.
func BenchmarkMake(b *testing.B) {
	list := newList()
	tail := list.Make("Nil", nil)
	cons := list.Constructor("Cons")
	for b.Loop() {
		_ = cons(adt.Fields{"head": 1, "tail": tail})
	}
}

// BenchmarkEquals measures derived equality on a 100-element list.
func BenchmarkEquals(b *testing.B) {
	list, v := benchList(100)
	w := fromSlice(list, toSlice(list)(v))
	for b.Loop() {
		_ = list.Equals(v, w)
	}
}

// BenchmarkFold measures a sum fold over a 100-element list.
func BenchmarkFold(b *testing.B) {
	list, v := benchList(100)
	rec, _ := list.Recursion()
	sum := adt.Fold(rec, sumAlgebra())
	for b.Loop() {
		_ = sum(v)
	}
}

// BenchmarkUnfold measures unfolding a 100-element countdown.
func BenchmarkUnfold(b *testing.B) {
	rec, _ := newList().Recursion()
	unfold := adt.Unfold(rec, countdown)
	for b.Loop() {
		_ = unfold(100)
	}
}

// BenchmarkMap measures rebuilding a 100-element list.
func BenchmarkMap(b *testing.B) {
	list, v := benchList(100)
	rec, _ := list.Recursion()
	id := rec.Map(rec.Rebuilder())
	for b.Loop() {
		_ = id(v)
	}
}

// BenchmarkTraverseState measures a stateful traversal of a 100-element list.
func BenchmarkTraverseState(b *testing.B) {
	list, v := benchList(100)
	rec, _ := list.Recursion()
	count := adt.TraverseState(rec, map[string]func(adt.Fields, int) (adt.Rebuild, int){
		"Nil":  func(_ adt.Fields, s int) (adt.Rebuild, int) { return adt.Rebuild(list.Constructor("Nil")), s },
		"Cons": func(_ adt.Fields, s int) (adt.Rebuild, int) { return adt.Rebuild(list.Constructor("Cons")), s + 1 },
	})
	for b.Loop() {
		_, _ = count(v, 0)
	}
}

// BenchmarkTraverseAsync measures a concurrent traversal of a random tree.
func BenchmarkTraverseAsync(b *testing.B) {
	tree := newTree()
	rec, _ := tree.Recursion()
	v := randTree(tree, rand.New(rand.NewPCG(42, 0)), 8)
	traverse := adt.TraverseAsync(context.Background(), rec, adt.AsyncHandlers{
		"Leaf": func(context.Context, adt.Fields) (adt.Rebuild, error) { return adt.Rebuild(tree.Constructor("Leaf")), nil },
		"Node": func(context.Context, adt.Fields) (adt.Rebuild, error) { return adt.Rebuild(tree.Constructor("Node")), nil },
	}, adt.WithConcurrency(4))
	for b.Loop() {
		_, _ = traverse(v)
	}
}

// BenchmarkOracleFunctorIdentity measures one oracle run over 20 seeds.
func BenchmarkOracleFunctorIdentity(b *testing.B) {
	list := newList()
	o := listOracles(list, adt.WithRunID(func() string { return "bench" }))
	seeds := listSeeds()
	for b.Loop() {
		_ = o.AnalyzeFunctorIdentity(seeds)
	}
}
