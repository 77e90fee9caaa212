package functional

import (
	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// SeparableSum is a functional on a product space that splits into one
// independent part per component:
//
//	F(x_1, ..., x_n) = f_1(x_1) + ... + f_n(x_n).
//
// Gradient, proximal and conjugate all distribute over the parts.
type SeparableSum struct {
	attrs
	fns []Functional
}

// NewSeparableSum returns the separable sum of the given parts.
func NewSeparableSum(fns ...Functional) (*SeparableSum, error) {
	if len(fns) == 0 {
		return nil, ErrEmptySum
	}
	parts := make([]Functional, len(fns))
	copy(parts, fns)
	doms := make([]*space.Space, len(parts))
	linear := true
	gradLip := 0.0
	for i, f := range parts {
		doms[i] = f.Domain()
		linear = linear && f.IsLinear()
		gradLip += f.GradLipschitz()
	}

	return &SeparableSum{
		attrs: attrs{domain: space.Product(doms...), linear: linear, gradLip: gradLip},
		fns:   parts,
	}, nil
}

// NewSeparableSumPower returns the n-fold separable sum of a single
// functional with itself.
func NewSeparableSumPower(f Functional, n int) (*SeparableSum, error) {
	if n <= 0 {
		return nil, ErrEmptySum
	}
	fns := make([]Functional, n)
	for i := range fns {
		fns[i] = f
	}

	return NewSeparableSum(fns...)
}

// NumParts returns the number of summands.
func (s *SeparableSum) NumParts() int { return len(s.fns) }

// At returns the i-th summand.
func (s *SeparableSum) At(i int) (Functional, error) {
	if i < 0 || i >= len(s.fns) {
		return nil, ErrIndexRange
	}

	return s.fns[i], nil
}

// Slice returns the separable sum of the summands in [lo, hi).
func (s *SeparableSum) Slice(lo, hi int) (*SeparableSum, error) {
	if lo < 0 || hi > len(s.fns) || lo >= hi {
		return nil, ErrIndexRange
	}

	return NewSeparableSum(s.fns[lo:hi]...)
}

func (s *SeparableSum) Evaluate(x *space.Element) (float64, error) {
	if err := s.checkArg(x); err != nil {
		return 0, err
	}
	total := 0.0
	for i, f := range s.fns {
		v, err := f.Evaluate(x.Part(i))
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// Gradient is the block-diagonal operator of the component gradients.
func (s *SeparableSum) Gradient() (operator.Operator, error) {
	grads := make([]operator.Operator, len(s.fns))
	for i, f := range s.fns {
		g, err := f.Gradient()
		if err != nil {
			return nil, err
		}
		grads[i] = g
	}
	diag, err := operator.NewDiagonal(grads...)
	if err != nil {
		return nil, err
	}

	return diag, nil
}

// Proximal applies each component proximal to its component. The variadic
// step sizes distribute: none or one value broadcasts to all parts, n values
// give one step per part.
func (s *SeparableSum) Proximal() (prox.Factory, error) {
	factories := make([]prox.Factory, len(s.fns))
	for i, f := range s.fns {
		fac, err := f.Proximal()
		if err != nil {
			return nil, err
		}
		factories[i] = fac
	}
	dom := s.domain

	return func(sigma ...float64) (operator.Operator, error) {
		steps, err := partSteps(len(factories), sigma)
		if err != nil {
			return nil, err
		}
		ops := make([]operator.Operator, len(factories))
		for i, fac := range factories {
			op, err := fac(steps[i])
			if err != nil {
				return nil, err
			}
			ops[i] = op
		}

		return newMapOp(dom, func(x *space.Element) (*space.Element, error) {
			flat := make([]float64, 0, dom.Dim())
			for i, op := range ops {
				yi, err := op.Apply(x.Part(i))
				if err != nil {
					return nil, err
				}
				flat = append(flat, yi.Flatten()...)
			}

			return dom.Element(flat...)
		}), nil
	}, nil
}

// partSteps resolves a variadic step list to one step per part.
func partSteps(n int, sigma []float64) ([]float64, error) {
	out := make([]float64, n)
	switch len(sigma) {
	case 0:
		for i := range out {
			out[i] = 1
		}
	case 1:
		if sigma[0] <= 0 {
			return nil, prox.ErrStepSize
		}
		for i := range out {
			out[i] = sigma[0]
		}
	case n:
		for i, s := range sigma {
			if s <= 0 {
				return nil, prox.ErrStepSize
			}
			out[i] = s
		}
	default:
		return nil, prox.ErrStepSize
	}

	return out, nil
}

// ConvexConj is the separable sum of the component conjugates.
func (s *SeparableSum) ConvexConj() (Functional, error) {
	conjs := make([]Functional, len(s.fns))
	for i, f := range s.fns {
		c, err := f.ConvexConj()
		if err != nil {
			return nil, err
		}
		conjs[i] = c
	}

	return NewSeparableSum(conjs...)
}
