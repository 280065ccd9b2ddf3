// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"fmt"
	"strings"
)

// Fields is the payload of one constructor level, keyed by field name.
type Fields map[string]Erased

// With returns a copy of f with name set to v.
func (f Fields) With(name string, v Erased) Fields {
	out := make(Fields, len(f)+1)
	for k, x := range f {
		out[k] = x
	}
	out[name] = v
	return out
}

// clone returns a shallow copy of f.
func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Get returns the field name of f as a T.
// Panics if the field is absent or has a different type.
func Get[T any](f Fields, name string) T {
	v, ok := f[name]
	if !ok {
		usagePanic("field %q not present", name)
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		usagePanic("field %q holds %T, want %T", name, v, zero)
	}
	return t
}

// Value is an immutable instance of an algebraic data type.
// Values are created only by constructor factories and compared with
// [Type.Equals], never by identity.
type Value struct {
	tag     string
	order   []string
	fields  Fields
	indexes Fields
}

// Tag returns the constructor name.
func (v Value) Tag() string { return v.tag }

// IsZero reports whether v was not produced by a constructor.
func (v Value) IsZero() bool { return v.tag == "" }

// Field returns the named field.
func (v Value) Field(name string) (Erased, bool) {
	x, ok := v.fields[name]
	return x, ok
}

// Fields returns a copy of the payload.
func (v Value) Fields() Fields { return v.fields.clone() }

// Index returns the cached index computed at construction.
func (v Value) Index(name string) (Erased, bool) {
	x, ok := v.indexes[name]
	return x, ok
}

// Indexes returns a copy of the cached index metadata.
func (v Value) Indexes() Fields { return v.indexes.clone() }

// String renders v as Tag{field: value, ...} in declared field order.
func (v Value) String() string {
	var b strings.Builder
	b.WriteString(v.tag)
	b.WriteByte('{')
	for i, name := range v.order {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", name, v.fields[name])
	}
	b.WriteByte('}')
	return b.String()
}

// FieldOf returns the named field of v as a T.
// Panics if the field is absent or has a different type.
func FieldOf[T any](v Value, name string) T {
	return Get[T](v.fields, name)
}
