// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Variant is one unfolding level of a value: the tag and payload of a
// single constructor, with self positions holding abstract children.
// A child may be a [Value], a fold result, a seed or a nested Variant.
type Variant struct {
	Tag    string
	Fields Fields
}

// Polynomial is the polynomial functor container of a [Type].
//
// The functor sends X to the sum over constructors of the product of the
// constructor's value fields and one X per self position. [Polynomial.Project]
// and [Polynomial.Embed] witness the isomorphism between a value and one
// layer of the functor; [Polynomial.MapPositions] is the functor action.
type Polynomial struct {
	t *Type
}

// Shape describes the arity of one summand.
type Shape struct {
	Tag       string
	Values    []string
	Positions []string
}

// Type returns the algebraic data type the container describes.
func (p *Polynomial) Type() *Type { return p.t }

// Container describes every summand in declared constructor order.
func (p *Polynomial) Container() []Shape {
	shapes := make([]Shape, len(p.t.ctors))
	for i, c := range p.t.ctors {
		s := Shape{Tag: c.desc.Name, Positions: append([]string(nil), c.self...)}
		for _, f := range c.desc.Fields {
			if !f.IsSelf() {
				s.Values = append(s.Values, f.Name)
			}
		}
		shapes[i] = s
	}
	return shapes
}

// SelfPositions returns the self field names of tag in declared order.
// Panics on an unknown tag.
func (p *Polynomial) SelfPositions(tag string) []string {
	return append([]string(nil), p.t.lookup(tag).self...)
}

// Project exposes the top layer of v. Self positions keep their
// unreduced child values.
func (p *Polynomial) Project(v Value) Variant {
	p.t.lookup(v.tag)
	return Variant{Tag: v.tag, Fields: v.fields.clone()}
}

// Embed is the inverse of [Polynomial.Project]. It applies embedSelf to
// every self position in declared order and hands the full payload to the
// constructor factory. A nil embedSelf is the identity.
// Panics on an unknown tag.
func (p *Polynomial) Embed(x Variant, embedSelf func(Erased) Erased) Value {
	c := p.t.lookup(x.Tag)
	payload := x.Fields.clone()
	if embedSelf != nil {
		for _, name := range c.self {
			if child, ok := payload[name]; ok {
				payload[name] = embedSelf(child)
			}
		}
	}
	return p.t.construct(c, payload)
}

// MapPositions applies f to every self position of x in declared order,
// leaving value fields untouched. x is not modified.
// Panics on an unknown tag.
func (p *Polynomial) MapPositions(x Variant, f func(Erased) Erased) Variant {
	c := p.t.lookup(x.Tag)
	out := Variant{Tag: x.Tag, Fields: x.Fields.clone()}
	for _, name := range c.self {
		if child, ok := out.Fields[name]; ok {
			out.Fields[name] = f(child)
		}
	}
	return out
}

// VariantEquals compares two layers field by field. Value fields use their
// declared witness; self positions use positions, or the derived equality
// for Values and reflection otherwise when positions is nil.
func (p *Polynomial) VariantEquals(a, b Variant, positions Witness[Erased]) bool {
	if a.Tag != b.Tag {
		return false
	}
	c, ok := p.t.byName[a.Tag]
	if !ok {
		return false
	}
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	for _, f := range c.desc.Fields {
		x, okx := a.Fields[f.Name]
		y, oky := b.Fields[f.Name]
		if okx != oky {
			return false
		}
		if !okx {
			continue
		}
		switch {
		case f.IsSelf() && positions != nil:
			if !positions.Equals(x, y) {
				return false
			}
		case f.IsSelf():
			if !p.t.positionEquals(x, y) {
				return false
			}
		default:
			if !f.Witness.Equals(x, y) {
				return false
			}
		}
	}
	return true
}
