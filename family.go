// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"fmt"
	"sort"
)

// Family is a parameterized algebraic data type. Parameter fields receive
// their witnesses at instantiation.
type Family struct {
	schema Schema
}

// NewFamily validates a parameterized schema.
//
// Parameter names must be non-empty and unique, every parameter reference
// must name a declared parameter, and parameter fields carry neither a
// witness nor a recursion marker.
func NewFamily(s Schema) (*Family, error) {
	s = s.clone()
	if err := validate(&s, validateFamily); err != nil {
		return nil, err
	}
	declared := make(map[string]bool, len(s.Parameters))
	for _, p := range s.Parameters {
		if p.Name == "" {
			return nil, &SchemaError{TypeName: s.TypeName, Err: ErrParameter, Detail: "unnamed parameter"}
		}
		if declared[p.Name] {
			return nil, &SchemaError{TypeName: s.TypeName, Err: ErrDuplicateName, Detail: fmt.Sprintf("parameter %q declared twice", p.Name)}
		}
		declared[p.Name] = true
	}
	for _, c := range s.Constructors {
		for _, f := range c.Fields {
			if f.Param != "" && !declared[f.Param] {
				return nil, &SchemaError{
					TypeName:    s.TypeName,
					Constructor: c.Name,
					Field:       f.Name,
					Err:         ErrParameter,
					Detail:      fmt.Sprintf("undeclared parameter %q", f.Param),
				}
			}
		}
	}
	return &Family{schema: s}, nil
}

// MustNewFamily is like [NewFamily] but panics on a malformed schema.
func MustNewFamily(s Schema) *Family {
	f, err := NewFamily(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the family's type name.
func (f *Family) Name() string { return f.schema.TypeName }

// Parameters returns the declared parameter names in order.
func (f *Family) Parameters() []string {
	out := make([]string, len(f.schema.Parameters))
	for i, p := range f.schema.Parameters {
		out[i] = p.Name
	}
	return out
}

// Instantiate resolves every parameter to a concrete witness and builds an
// independent [Type]. Each call builds a fresh Type; nothing is cached.
//
// witnesses must cover exactly the declared parameters.
func (f *Family) Instantiate(witnesses map[string]Witness[Erased]) (*Type, error) {
	s := f.schema.clone()
	for _, p := range s.Parameters {
		w, ok := witnesses[p.Name]
		if !ok || w == nil {
			return nil, &SchemaError{TypeName: s.TypeName, Err: ErrMissingWitness, Detail: fmt.Sprintf("no witness for parameter %q", p.Name)}
		}
	}
	if extra := undeclared(witnesses, s.Parameters); len(extra) > 0 {
		return nil, &SchemaError{TypeName: s.TypeName, Err: ErrParameter, Detail: fmt.Sprintf("witnesses for undeclared parameters %q", extra)}
	}
	for i := range s.Constructors {
		fields := s.Constructors[i].Fields
		for j := range fields {
			if fields[j].Param != "" {
				fields[j].Witness = witnesses[fields[j].Param]
			}
		}
	}
	if err := validate(&s, validateResolved); err != nil {
		return nil, err
	}
	return build(s), nil
}

func undeclared(witnesses map[string]Witness[Erased], params []Parameter) []string {
	known := make(map[string]bool, len(params))
	for _, p := range params {
		known[p.Name] = true
	}
	var extra []string
	for name := range witnesses {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return extra
}
