// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/adt"
)

func TestWriterTell(t *testing.T) {
	w := adt.Tell[string](42, "a", "b")
	if w.Value != 42 {
		t.Fatalf("got %v, want 42", w.Value)
	}
	if !slices.Equal(w.Output, []string{"a", "b"}) {
		t.Fatalf("got %v, want [a b]", w.Output)
	}
}

func TestWriterOfHasNoOutput(t *testing.T) {
	w := adt.WriterEffect[int]().Of(1).(adt.Written[int])
	if len(w.Output) != 0 {
		t.Fatalf("got %v, want no output", w.Output)
	}
}

// TestPropertyWriterApOrder: Ap concatenates the function's output first.
func TestPropertyWriterApOrder(t *testing.T) {
	app := adt.WriterEffect[int]()
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randInt(rng), randInt(rng)
		ff := adt.Written[int]{Value: func(x adt.Erased) adt.Erased { return x.(int) + 1 }, Output: []int{a}}
		got := app.Ap(ff, adt.Tell[int](b, b)).(adt.Written[int])
		if got.Value != b+1 || !slices.Equal(got.Output, []int{a, b}) {
			t.Fatalf("ap: got %v, want {%d [%d %d]}", got, b+1, a, b)
		}
	}
}

// TestPropertyWriterMapIdentity: Map(w, id) ≡ w
func TestPropertyWriterMapIdentity(t *testing.T) {
	app := adt.WriterEffect[int]()
	w := adt.WriterEffectWitness(adt.Eq[int](), adt.Comparable[int]())
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := adt.Tell[int](randInt(rng), randInt(rng), randInt(rng))
		if y := app.Map(x, func(v adt.Erased) adt.Erased { return v }); !w.Equals(x, y) {
			t.Fatalf("map identity: %v != %v", y, x)
		}
	}
}
