// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFamily() adt.Schema {
	return adt.Schema{
		TypeName:   "List",
		Parameters: []adt.Parameter{{Name: "A"}},
		Constructors: []adt.ConstructorDescriptor{
			{Name: "Nil"},
			{Name: "Cons", Fields: []adt.FieldDescriptor{
				adt.ParamField("head", "A"),
				adt.SelfField("tail"),
			}},
		},
	}
}

func TestFamilyInstantiate(t *testing.T) {
	fam, err := adt.NewFamily(listFamily())
	require.NoError(t, err)
	assert.Equal(t, "List", fam.Name())
	assert.Equal(t, []string{"A"}, fam.Parameters())

	ints, err := fam.Instantiate(map[string]adt.Witness[adt.Erased]{"A": adt.Eq[int]()})
	require.NoError(t, err)
	caseless := adt.Erase[string](adt.WitnessFunc[string](strings.EqualFold))
	words, err := fam.Instantiate(map[string]adt.Witness[adt.Erased]{"A": caseless})
	require.NoError(t, err)
	assert.NotSame(t, ints, words, "no caching")

	a := words.Make("Cons", adt.Fields{"head": "Go", "tail": words.Make("Nil", nil)})
	b := words.Make("Cons", adt.Fields{"head": "GO", "tail": words.Make("Nil", nil)})
	assert.True(t, words.Equals(a, b))

	in := ints.Introspect()
	assert.Equal(t, []string{"A"}, in.Parameters)
	cons, _ := in.Constructor("Cons")
	assert.Equal(t, "A", cons.Fields[0].Param)

	sum := adt.Fold(mustRecursion(t, ints), sumAlgebra())
	assert.Equal(t, 6, sum(fromSlice(ints, []int{1, 2, 3})))
}

func TestFamilyRejects(t *testing.T) {
	undeclared := listFamily()
	undeclared.Constructors[1].Fields[0].Param = "B"
	_, err := adt.NewFamily(undeclared)
	assert.ErrorIs(t, err, adt.ErrParameter)

	dup := listFamily()
	dup.Parameters = append(dup.Parameters, adt.Parameter{Name: "A"})
	_, err = adt.NewFamily(dup)
	assert.ErrorIs(t, err, adt.ErrDuplicateName)

	witnessed := listFamily()
	witnessed.Constructors[1].Fields[0].Witness = adt.Eq[int]()
	_, err = adt.NewFamily(witnessed)
	assert.ErrorIs(t, err, adt.ErrParameter)

	_, err = adt.New(listFamily())
	assert.ErrorIs(t, err, adt.ErrParameter, "parameterized schemas need a family")

	assert.Panics(t, func() { adt.MustNewFamily(undeclared) })

	fam := adt.MustNewFamily(listFamily())
	_, err = fam.Instantiate(nil)
	assert.ErrorIs(t, err, adt.ErrMissingWitness)
	_, err = fam.Instantiate(map[string]adt.Witness[adt.Erased]{"A": nil})
	assert.ErrorIs(t, err, adt.ErrMissingWitness)
	_, err = fam.Instantiate(map[string]adt.Witness[adt.Erased]{"A": adt.Eq[int](), "Z": adt.Eq[int]()})
	assert.ErrorIs(t, err, adt.ErrParameter)
}

func mustRecursion(t *testing.T, typ *adt.Type) *adt.Recursion {
	t.Helper()
	rec, ok := typ.Recursion()
	require.True(t, ok)
	return rec
}
