// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schemadoc reads algebraic data type schemas from YAML documents.
//
// A document has the shape
//
//	typeName: List
//	parameters:
//	  - name: A
//	constructors:
//	  - name: Nil
//	  - name: Cons
//	    fields:
//	      - {name: head, param: A}
//	      - {name: tail, recursion: self}
//	    indexes:
//	      - {name: size, witness: int, compute: size}
//
// Witness and compute names are resolved through a [Registry].
// Unknown keys are rejected.
package schemadoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"code.hybscloud.com/adt"
	"gopkg.in/yaml.v3"
)

// ErrUnknownRecursion reports a recursion marker other than none, self or foreign.
var ErrUnknownRecursion = errors.New("unknown recursion marker")

// Document is the serialized form of an [adt.Schema].
type Document struct {
	TypeName     string           `yaml:"typeName"`
	Parameters   []ParameterDoc   `yaml:"parameters,omitempty"`
	Constructors []ConstructorDoc `yaml:"constructors"`
}

// ParameterDoc declares a family parameter.
type ParameterDoc struct {
	Name string `yaml:"name"`
}

// ConstructorDoc declares one constructor.
type ConstructorDoc struct {
	Name    string     `yaml:"name"`
	Fields  []FieldDoc `yaml:"fields,omitempty"`
	Indexes []IndexDoc `yaml:"indexes,omitempty"`
}

// FieldDoc declares one field. Exactly one of Witness, Param and
// Recursion "self" is expected; the schema validator enforces it.
type FieldDoc struct {
	Name      string `yaml:"name"`
	Witness   string `yaml:"witness,omitempty"`
	Param     string `yaml:"param,omitempty"`
	Recursion string `yaml:"recursion,omitempty"`
}

// IndexDoc declares one computed index.
type IndexDoc struct {
	Name    string `yaml:"name"`
	Witness string `yaml:"witness"`
	Compute string `yaml:"compute"`
}

// Decode reads one document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("schemadoc: empty document")
		}
		return nil, fmt.Errorf("schemadoc: decode: %w", err)
	}
	return &doc, nil
}

// Load decodes a document held in memory.
func Load(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemadoc: %w", err)
	}
	doc, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes doc as YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Schema resolves every witness and compute name of doc.
// Errors name the offending document path, e.g. constructors[1].fields[0].
func (r *Registry) Schema(doc *Document) (adt.Schema, error) {
	s := adt.Schema{TypeName: doc.TypeName}
	for _, p := range doc.Parameters {
		s.Parameters = append(s.Parameters, adt.Parameter{Name: p.Name})
	}
	for i, cd := range doc.Constructors {
		c := adt.ConstructorDescriptor{Name: cd.Name}
		for j, fd := range cd.Fields {
			path := fmt.Sprintf("constructors[%d].fields[%d]", i, j)
			rec, err := parseRecursion(fd.Recursion)
			if err != nil {
				return adt.Schema{}, fmt.Errorf("schemadoc: %s: %w", path, err)
			}
			f := adt.FieldDescriptor{Name: fd.Name, Recursion: rec, Param: fd.Param}
			if fd.Witness != "" {
				w, ok := r.Witness(fd.Witness)
				if !ok {
					return adt.Schema{}, fmt.Errorf("schemadoc: %s: %w %q", path, ErrUnknownWitness, fd.Witness)
				}
				f.Witness = w
			}
			c.Fields = append(c.Fields, f)
		}
		for j, id := range cd.Indexes {
			path := fmt.Sprintf("constructors[%d].indexes[%d]", i, j)
			ix := adt.IndexDescriptor{Name: id.Name}
			if id.Witness != "" {
				w, ok := r.Witness(id.Witness)
				if !ok {
					return adt.Schema{}, fmt.Errorf("schemadoc: %s: %w %q", path, ErrUnknownWitness, id.Witness)
				}
				ix.Witness = w
			}
			if id.Compute != "" {
				f, ok := r.Compute(id.Compute)
				if !ok {
					return adt.Schema{}, fmt.Errorf("schemadoc: %s: %w %q", path, ErrUnknownCompute, id.Compute)
				}
				ix.Compute = f
			}
			c.Indexes = append(c.Indexes, ix)
		}
		s.Constructors = append(s.Constructors, c)
	}
	return s, nil
}

// Build resolves doc and builds it. A document with parameters yields a
// family; otherwise a type. Exactly one of the results is non-nil on success.
func (r *Registry) Build(doc *Document) (*adt.Type, *adt.Family, error) {
	s, err := r.Schema(doc)
	if err != nil {
		return nil, nil, err
	}
	if len(s.Parameters) > 0 {
		f, err := adt.NewFamily(s)
		if err != nil {
			return nil, nil, err
		}
		return nil, f, nil
	}
	t, err := adt.New(s)
	if err != nil {
		return nil, nil, err
	}
	return t, nil, nil
}

func parseRecursion(s string) (adt.Recursion, error) {
	switch s {
	case "", "none":
		return adt.RecursionNone, nil
	case "self":
		return adt.RecursionSelf, nil
	case "foreign":
		return adt.RecursionForeign, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownRecursion, s)
	}
}
