// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schemadoc

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"code.hybscloud.com/adt"
)

// Registry errors.
var (
	ErrUnknownWitness = errors.New("unknown witness")
	ErrUnknownCompute = errors.New("unknown compute")
	ErrRegistered     = errors.New("name already registered")
)

// ComputeFunc computes an index from the raw payload of one level.
type ComputeFunc = func(adt.Fields) adt.Erased

// Registry resolves the witness and compute names used by documents.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	witnesses map[string]adt.Witness[adt.Erased]
	computes  map[string]ComputeFunc
}

// NewRegistry returns a registry preloaded with the builtin witnesses
// int, int64, float64, string, bool and any (reflection).
func NewRegistry() *Registry {
	return &Registry{
		witnesses: map[string]adt.Witness[adt.Erased]{
			"int":     adt.Eq[int](),
			"int64":   adt.Eq[int64](),
			"float64": adt.Eq[float64](),
			"string":  adt.Eq[string](),
			"bool":    adt.Eq[bool](),
			"any":     adt.DeepEqual(),
		},
		computes: make(map[string]ComputeFunc),
	}
}

// RegisterWitness adds a named witness. Names cannot be rebound.
func (r *Registry) RegisterWitness(name string, w adt.Witness[adt.Erased]) error {
	if name == "" || w == nil {
		return fmt.Errorf("schemadoc: register witness %q: empty name or nil witness", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.witnesses[name]; ok {
		return fmt.Errorf("schemadoc: witness %q: %w", name, ErrRegistered)
	}
	r.witnesses[name] = w
	return nil
}

// RegisterCompute adds a named index computation. Names cannot be rebound.
func (r *Registry) RegisterCompute(name string, f ComputeFunc) error {
	if name == "" || f == nil {
		return fmt.Errorf("schemadoc: register compute %q: empty name or nil function", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.computes[name]; ok {
		return fmt.Errorf("schemadoc: compute %q: %w", name, ErrRegistered)
	}
	r.computes[name] = f
	return nil
}

// Witness looks up a witness by name.
func (r *Registry) Witness(name string) (adt.Witness[adt.Erased], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.witnesses[name]
	return w, ok
}

// Compute looks up an index computation by name.
func (r *Registry) Compute(name string) (ComputeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.computes[name]
	return f, ok
}

// Witnesses returns the registered witness names, sorted.
func (r *Registry) Witnesses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.witnesses))
	for name := range r.witnesses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
