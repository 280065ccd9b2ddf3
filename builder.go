// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"fmt"
	"slices"
)

// Constructor assembles a tagged immutable [Value] from a payload.
// Panics when a declared field is missing or an undeclared one is present.
type Constructor func(Fields) Value

// Type is an algebraic data type built once from a [Schema]: constructor
// factories, tag dispatch, derived equality, the polynomial container and,
// when the schema is self-recursive, the recursion engine.
//
// A Type is immutable and safe for concurrent use.
type Type struct {
	schema    Schema
	ctors     []*constructor
	byName    map[string]*constructor
	factories map[string]Constructor
	poly      *Polynomial
	rec       *Recursion
}

// constructor is the resolved form of a ConstructorDescriptor.
type constructor struct {
	desc  ConstructorDescriptor
	order []string
	self  []string
	field map[string]FieldDescriptor
}

// New validates s and builds its [Type].
// Malformed schemas yield a *[SchemaError]. Schemas with parameter
// references must go through [NewFamily].
func New(s Schema) (*Type, error) {
	s = s.clone()
	if err := validate(&s, validateConcrete); err != nil {
		return nil, err
	}
	if len(s.Parameters) > 0 {
		return nil, &SchemaError{TypeName: s.TypeName, Err: ErrParameter, Detail: "parameterized schema; use NewFamily"}
	}
	return build(s), nil
}

// MustNew is like [New] but panics on a malformed schema.
func MustNew(s Schema) *Type {
	t, err := New(s)
	if err != nil {
		panic(err)
	}
	return t
}

func build(s Schema) *Type {
	t := &Type{
		schema:    s,
		byName:    make(map[string]*constructor, len(s.Constructors)),
		factories: make(map[string]Constructor, len(s.Constructors)),
	}
	for _, d := range s.Constructors {
		c := &constructor{
			desc:  d,
			order: make([]string, 0, len(d.Fields)),
			field: make(map[string]FieldDescriptor, len(d.Fields)),
		}
		for _, f := range d.Fields {
			c.order = append(c.order, f.Name)
			c.field[f.Name] = f
			if f.IsSelf() {
				c.self = append(c.self, f.Name)
			}
		}
		t.ctors = append(t.ctors, c)
		t.byName[d.Name] = c
		t.factories[d.Name] = func(payload Fields) Value {
			return t.construct(c, payload)
		}
	}
	t.poly = &Polynomial{t: t}
	if s.hasSelf() {
		t.rec = &Recursion{t: t, poly: t.poly}
	}
	return t
}

// validateMode selects how parameter references are treated.
type validateMode uint8

const (
	validateConcrete validateMode = iota // no parameter references
	validateFamily                       // references without witnesses
	validateResolved                     // references with substituted witnesses
)

// validate checks the structural rules shared by [New], [NewFamily] and
// [Family.Instantiate].
func validate(s *Schema, mode validateMode) error {
	fail := func(ctor, field string, err error, format string, args ...any) error {
		return &SchemaError{
			TypeName:    s.TypeName,
			Constructor: ctor,
			Field:       field,
			Err:         err,
			Detail:      fmt.Sprintf(format, args...),
		}
	}
	if s.TypeName == "" {
		return fail("", "", ErrEmptySchema, "type name is empty")
	}
	if len(s.Constructors) == 0 {
		return fail("", "", ErrEmptySchema, "no constructors")
	}
	ctorSeen := make(map[string]bool, len(s.Constructors))
	for _, c := range s.Constructors {
		if c.Name == "" {
			return fail("", "", ErrEmptySchema, "unnamed constructor")
		}
		if ctorSeen[c.Name] {
			return fail(c.Name, "", ErrDuplicateName, "constructor declared twice")
		}
		ctorSeen[c.Name] = true

		fieldSeen := make(map[string]bool, len(c.Fields))
		for _, f := range c.Fields {
			if f.Name == "" {
				return fail(c.Name, "", ErrEmptySchema, "unnamed field")
			}
			if fieldSeen[f.Name] {
				return fail(c.Name, f.Name, ErrDuplicateName, "field declared twice")
			}
			fieldSeen[f.Name] = true
			if f.Recursion > RecursionForeign {
				return fail(c.Name, f.Name, ErrInvalidRecursion, "marker %d not in {self, foreign}", f.Recursion)
			}
			switch {
			case f.Param != "":
				switch {
				case mode == validateConcrete:
					return fail(c.Name, f.Name, ErrParameter, "reference to %q outside a family", f.Param)
				case f.Recursion != RecursionNone:
					return fail(c.Name, f.Name, ErrParameter, "parameter field carries a recursion marker")
				case mode == validateFamily && f.Witness != nil:
					return fail(c.Name, f.Name, ErrParameter, "parameter field carries a witness")
				case mode == validateResolved && f.Witness == nil:
					return fail(c.Name, f.Name, ErrMissingWitness, "parameter %q left unresolved", f.Param)
				}
			case f.IsSelf():
				if f.Witness != nil {
					return fail(c.Name, f.Name, ErrInvalidRecursion, "self field carries a witness")
				}
			case f.Witness == nil:
				return fail(c.Name, f.Name, ErrMissingWitness, "value field has no witness")
			}
		}

		indexSeen := make(map[string]bool, len(c.Indexes))
		for _, ix := range c.Indexes {
			if ix.Name == "" {
				return fail(c.Name, "", ErrEmptySchema, "unnamed index")
			}
			if indexSeen[ix.Name] {
				return fail(c.Name, ix.Name, ErrDuplicateName, "index declared twice")
			}
			indexSeen[ix.Name] = true
			if ix.Witness == nil {
				return fail(c.Name, ix.Name, ErrMissingWitness, "index has no witness")
			}
			if ix.Compute == nil {
				return fail(c.Name, ix.Name, ErrMissingCompute, "index has no compute function")
			}
		}
	}
	return nil
}

// construct copies the declared fields out of payload and computes the
// index metadata once from the raw payload of this level.
func (t *Type) construct(c *constructor, payload Fields) Value {
	fields := make(Fields, len(c.order))
	for _, name := range c.order {
		v, ok := payload[name]
		if !ok {
			usagePanic("%s.%s: missing field %q", t.schema.TypeName, c.desc.Name, name)
		}
		fields[name] = v
	}
	if len(payload) != len(fields) {
		for name := range payload {
			if _, ok := c.field[name]; !ok {
				usagePanic("%s.%s: undeclared field %q", t.schema.TypeName, c.desc.Name, name)
			}
		}
	}
	var indexes Fields
	if len(c.desc.Indexes) > 0 {
		indexes = make(Fields, len(c.desc.Indexes))
		for _, ix := range c.desc.Indexes {
			indexes[ix.Name] = ix.Compute(fields.clone())
		}
	}
	return Value{tag: c.desc.Name, order: c.order, fields: fields, indexes: indexes}
}

// lookup resolves a tag or panics.
func (t *Type) lookup(tag string) *constructor {
	c, ok := t.byName[tag]
	if !ok {
		usagePanic("%s: unknown constructor %q", t.schema.TypeName, tag)
	}
	return c
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.schema.TypeName }

// Recursive reports whether any constructor declares a self field.
func (t *Type) Recursive() bool { return t.rec != nil }

// Tags returns the constructor names in declared order.
func (t *Type) Tags() []string {
	tags := make([]string, len(t.ctors))
	for i, c := range t.ctors {
		tags[i] = c.desc.Name
	}
	return tags
}

// Constructor returns the factory for the named constructor.
// Panics on an unknown name.
func (t *Type) Constructor(name string) Constructor {
	t.lookup(name)
	return t.factories[name]
}

// Constructors returns every factory keyed by constructor name.
func (t *Type) Constructors() map[string]Constructor {
	out := make(map[string]Constructor, len(t.factories))
	for k, v := range t.factories {
		out[k] = v
	}
	return out
}

// Make builds a value of the named constructor.
// Equivalent to t.Constructor(tag)(fields).
func (t *Type) Make(tag string, fields Fields) Value {
	return t.construct(t.lookup(tag), fields)
}

// Polynomial returns the polynomial functor container of t.
func (t *Type) Polynomial() *Polynomial { return t.poly }

// Recursion returns the recursion engine. ok is false when the schema has
// no self field.
func (t *Type) Recursion() (rec *Recursion, ok bool) {
	return t.rec, t.rec != nil
}

// Introspection is a read-only reflection of a built [Type].
type Introspection struct {
	TypeName     string
	Recursive    bool
	Parameters   []string
	Constructors []ConstructorInfo
}

// ConstructorInfo describes one constructor.
type ConstructorInfo struct {
	Name    string
	Fields  []FieldInfo
	Indexes []string
}

// FieldInfo describes one field. Param is the parameter the field was
// resolved from, if any.
type FieldInfo struct {
	Name      string
	Recursion Recursion
	Param     string
}

// Constructor returns the info of the named constructor.
func (in Introspection) Constructor(name string) (ConstructorInfo, bool) {
	i := slices.IndexFunc(in.Constructors, func(c ConstructorInfo) bool { return c.Name == name })
	if i < 0 {
		return ConstructorInfo{}, false
	}
	return in.Constructors[i], true
}

// Introspect returns a fresh reflection of the schema and its resolved indexes.
func (t *Type) Introspect() Introspection {
	in := Introspection{
		TypeName:     t.schema.TypeName,
		Recursive:    t.Recursive(),
		Constructors: make([]ConstructorInfo, len(t.ctors)),
	}
	for _, p := range t.schema.Parameters {
		in.Parameters = append(in.Parameters, p.Name)
	}
	for i, c := range t.ctors {
		info := ConstructorInfo{Name: c.desc.Name}
		for _, f := range c.desc.Fields {
			info.Fields = append(info.Fields, FieldInfo{Name: f.Name, Recursion: f.Recursion, Param: f.Param})
		}
		for _, ix := range c.desc.Indexes {
			info.Indexes = append(info.Indexes, ix.Name)
		}
		in.Constructors[i] = info
	}
	return in
}
