// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Schema declares an algebraic data type: a closed, non-empty set of named
// constructors, each with ordered fields and optional computed indexes.
type Schema struct {
	TypeName     string
	Parameters   []Parameter
	Constructors []ConstructorDescriptor
}

// Parameter names a type parameter of a [Family].
type Parameter struct {
	Name string
}

// ConstructorDescriptor declares one constructor.
type ConstructorDescriptor struct {
	Name    string
	Fields  []FieldDescriptor
	Indexes []IndexDescriptor
}

// Recursion marks how a field refers back to an algebraic data type.
type Recursion uint8

const (
	// RecursionNone is an ordinary value field compared by its witness.
	RecursionNone Recursion = iota
	// RecursionSelf is a recursive position holding a value of the same type.
	RecursionSelf
	// RecursionForeign is reserved for positions holding values of another
	// algebraic data type. It behaves exactly like RecursionNone.
	RecursionForeign
)

func (r Recursion) String() string {
	switch r {
	case RecursionNone:
		return "none"
	case RecursionSelf:
		return "self"
	case RecursionForeign:
		return "foreign"
	default:
		return "invalid"
	}
}

// FieldDescriptor declares one field of a constructor.
//
// Exactly one discriminant applies:
//   - a value field has a Witness (Recursion is RecursionNone or RecursionForeign)
//   - a self field has Recursion == RecursionSelf and no Witness
//   - a parameter field has Param set and no Witness (families only)
type FieldDescriptor struct {
	Name      string
	Witness   Witness[Erased]
	Recursion Recursion
	Param     string
}

// IsSelf reports whether the field is a recursive position.
func (f FieldDescriptor) IsSelf() bool { return f.Recursion == RecursionSelf }

// ValueField declares a value field compared by w.
func ValueField(name string, w Witness[Erased]) FieldDescriptor {
	return FieldDescriptor{Name: name, Witness: w}
}

// SelfField declares a recursive position.
func SelfField(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Recursion: RecursionSelf}
}

// ParamField declares a field whose witness is supplied at instantiation.
func ParamField(name, param string) FieldDescriptor {
	return FieldDescriptor{Name: name, Param: param}
}

// IndexDescriptor declares a per-constructor computed index.
// Compute sees only the raw payload of its own level; self positions are
// unreduced children.
type IndexDescriptor struct {
	Name    string
	Witness Witness[Erased]
	Compute func(Fields) Erased
}

// hasSelf reports whether any constructor declares a self field.
func (s *Schema) hasSelf() bool {
	for _, c := range s.Constructors {
		for _, f := range c.Fields {
			if f.IsSelf() {
				return true
			}
		}
	}
	return false
}

// clone deep-copies the descriptor slices so a built Type never shares
// backing arrays with caller-owned schemas.
func (s Schema) clone() Schema {
	out := Schema{TypeName: s.TypeName}
	out.Parameters = append([]Parameter(nil), s.Parameters...)
	out.Constructors = make([]ConstructorDescriptor, len(s.Constructors))
	for i, c := range s.Constructors {
		out.Constructors[i] = ConstructorDescriptor{
			Name:    c.Name,
			Fields:  append([]FieldDescriptor(nil), c.Fields...),
			Indexes: append([]IndexDescriptor(nil), c.Indexes...),
		}
	}
	return out
}
