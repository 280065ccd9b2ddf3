// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Equals is the structural equality derived from the schema.
//
// Values with different tags are unequal. Otherwise every declared field is
// compared in declared order: value fields by their witness, self fields by
// Equals itself. A self position that does not hold a [Value] is unequal.
// When the constructor declares indexes, both sides must carry every index
// and the index witnesses must agree.
//
// Cost is proportional to the size of the smaller subtree; nothing is memoized.
func (t *Type) Equals(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}
	c, ok := t.byName[a.tag]
	if !ok {
		return false
	}
	for _, f := range c.desc.Fields {
		x, okx := a.fields[f.Name]
		y, oky := b.fields[f.Name]
		if !okx || !oky {
			return false
		}
		if f.IsSelf() {
			xv, okx := x.(Value)
			yv, oky := y.(Value)
			if !okx || !oky || !t.Equals(xv, yv) {
				return false
			}
			continue
		}
		if !f.Witness.Equals(x, y) {
			return false
		}
	}
	for _, ix := range c.desc.Indexes {
		x, okx := a.indexes[ix.Name]
		y, oky := b.indexes[ix.Name]
		if !okx || !oky || !ix.Witness.Equals(x, y) {
			return false
		}
	}
	return true
}

// Witness returns t's derived equality as a witness over values.
func (t *Type) Witness() Witness[Value] {
	return WitnessFunc[Value](t.Equals)
}

// positionEquals compares two self positions. Values use the derived
// equality; anything else falls back to reflection.
func (t *Type) positionEquals(x, y Erased) bool {
	xv, okx := x.(Value)
	yv, oky := y.(Value)
	if okx || oky {
		return okx && oky && t.Equals(xv, yv)
	}
	return DeepEqual().Equals(x, y)
}
