// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"reflect"
	"sort"
)

// Cases maps every constructor name to a branch receiving its payload.
type Cases[R any] map[string]func(Fields) R

// Match dispatches v to the branch for its tag.
//
// The case set must be exhaustive and must not name unknown constructors;
// a violation panics before any branch runs.
func Match[R any](t *Type, v Value, cases Cases[R]) R {
	checkHandlers(t, "match", keys(cases))
	t.lookup(v.tag)
	return cases[v.tag](v.fields.clone())
}

// Matcher validates cases once and returns a reusable dispatch function.
func Matcher[R any](t *Type, cases Cases[R]) func(Value) R {
	checkHandlers(t, "match", keys(cases))
	return func(v Value) R {
		t.lookup(v.tag)
		return cases[v.tag](v.fields.clone())
	}
}

// checkHandlers panics unless names covers exactly the constructors of t.
func checkHandlers(t *Type, what string, names []string) {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := t.byName[n]; !ok {
			usagePanic("%s: %s names unknown constructor %q", t.schema.TypeName, what, n)
		}
		have[n] = true
	}
	for _, c := range t.ctors {
		if !have[c.desc.Name] {
			usagePanic("%s: %s is missing a handler for %q", t.schema.TypeName, what, c.desc.Name)
		}
	}
}

// keys returns the sorted keys of a handler map, skipping nil handlers.
func keys[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		if rv := reflect.ValueOf(v); !rv.IsValid() || (rv.Kind() == reflect.Func && rv.IsNil()) {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
