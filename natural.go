// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Natural transformation adapters.
// They let the polynomial functor take part as one leg of a 2-cell
// composition in an external endofunctor algebra. The adapters only route
// components through the container; they check no naturality themselves.

// Transformation is the component of a natural transformation between
// polynomial layers.
type Transformation func(Variant) Variant

// Identity returns the identity transformation.
func (p *Polynomial) Identity() Transformation {
	return func(x Variant) Variant { return x }
}

// Vertical composes alpha then beta.
func (p *Polynomial) Vertical(alpha, beta Transformation) Transformation {
	return func(x Variant) Variant { return beta(alpha(x)) }
}

// WhiskerLeft applies alpha one layer down: every self position holding a
// Variant is replaced by alpha of it. Other positions pass through.
func (p *Polynomial) WhiskerLeft(alpha Transformation) Transformation {
	return func(x Variant) Variant {
		return p.MapPositions(x, func(child Erased) Erased {
			if inner, ok := child.(Variant); ok {
				return alpha(inner)
			}
			return child
		})
	}
}

// WhiskerRight applies alpha at the outer layer.
func (p *Polynomial) WhiskerRight(alpha Transformation) Transformation {
	return func(x Variant) Variant { return alpha(x) }
}

// Horizontal composes alpha inside and beta outside:
// WhiskerRight(beta) after WhiskerLeft(alpha).
func (p *Polynomial) Horizontal(alpha, beta Transformation) Transformation {
	return p.Vertical(p.WhiskerLeft(alpha), p.WhiskerRight(beta))
}
