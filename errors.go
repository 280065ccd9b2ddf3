// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"errors"
	"fmt"
	"strings"
)

// Schema validation failures. [SchemaError] wraps exactly one of these.
var (
	ErrEmptySchema      = errors.New("empty schema")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrMissingWitness   = errors.New("missing witness")
	ErrInvalidRecursion = errors.New("invalid recursion marker")
	ErrMissingCompute   = errors.New("missing index compute")
	ErrParameter        = errors.New("parameter misuse")
)

// SchemaError reports a malformed schema. It is returned by [New],
// [NewFamily] and [Family.Instantiate]; the schema must be fixed.
type SchemaError struct {
	TypeName    string
	Constructor string
	Field       string
	Err         error
	Detail      string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("adt: schema")
	if e.TypeName != "" {
		b.WriteString(" ")
		b.WriteString(e.TypeName)
	}
	if e.Constructor != "" {
		b.WriteString(".")
		b.WriteString(e.Constructor)
		if e.Field != "" {
			b.WriteString(".")
			b.WriteString(e.Field)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the sentinel error.
func (e *SchemaError) Unwrap() error { return e.Err }

// usagePanic aborts on a violated closed-world contract: unknown tags,
// missing handlers, malformed payloads.
// Extracted as a noinline function so callers remain inlineable.
//
//go:noinline
func usagePanic(format string, args ...any) {
	panic("adt: " + fmt.Sprintf(format, args...))
}

// PanicError wraps a value recovered from a panic inside caller-supplied code.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// capture runs f and converts a panic into a *PanicError.
func capture(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	f()
	return nil
}
