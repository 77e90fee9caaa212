package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// GroupL1Norm is the mixed L1-Lp norm of a vector field on a power space:
// the pointwise p-norm across components, summed over all points,
//
//	‖x‖ = Σ_t ‖(x_1[t], ..., x_m[t])‖_p.
type GroupL1Norm struct {
	attrs
	pw *operator.PointwiseNorm
}

// NewGroupL1Norm returns the group L1 norm with inner exponent p on the
// power space vfspace.
func NewGroupL1Norm(vfspace *space.Space, p float64) (*GroupL1Norm, error) {
	if !vfspace.IsProduct() {
		return nil, ErrNotProductSpace
	}
	pw, err := operator.NewPointwiseNorm(vfspace, p)
	if err != nil {
		return nil, ErrNotPowerSpace
	}

	return &GroupL1Norm{attrs: attrs{domain: vfspace, gradLip: unknownLip()}, pw: pw}, nil
}

// Exponent returns the inner (pointwise) exponent p.
func (f *GroupL1Norm) Exponent() float64 { return f.pw.Exponent() }

func (f *GroupL1Norm) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	norms, err := f.pw.Apply(x)
	if err != nil {
		return 0, err
	}

	return norms.Sum(), nil
}

// Gradient exists for finite exponents; points with vanishing pointwise norm
// get a zero gradient there.
func (f *GroupL1Norm) Gradient() (operator.Operator, error) {
	p := f.pw.Exponent()
	if math.IsInf(p, 1) {
		return nil, ErrNotImplemented
	}
	if p == 1 {
		return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
			return x.Sign(), nil
		}), nil
	}
	pw := f.pw

	return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
		norms, err := pw.Apply(x)
		if err != nil {
			return nil, err
		}
		nflat := norms.Flatten()
		m := x.Space().NumParts()
		comps := make([][]float64, m)
		for i := 0; i < m; i++ {
			comps[i] = x.Part(i).Flatten()
		}
		for t, n := range nflat {
			for i := 0; i < m; i++ {
				v := comps[i][t]
				switch {
				case n == 0:
					comps[i][t] = 0
				case p == 2:
					comps[i][t] = v / n
				default:
					comps[i][t] = math.Pow(math.Abs(v), p-2) * v / math.Pow(n, p-1)
				}
			}
		}
		flat := make([]float64, 0, x.Space().Dim())
		for i := 0; i < m; i++ {
			flat = append(flat, comps[i]...)
		}

		return x.Space().Element(flat...)
	}), nil
}

func (f *GroupL1Norm) Proximal() (prox.Factory, error) {
	switch f.pw.Exponent() {
	case 1:
		return prox.L1(f.domain), nil
	case 2:
		return prox.L1L2(f.domain), nil
	default:
		return nil, ErrNotImplemented
	}
}

// ConvexConj is the indicator of the dual mixed-norm unit ball.
func (f *GroupL1Norm) ConvexConj() (Functional, error) {
	return NewIndicatorGroupL1UnitBall(f.domain, conjExponent(f.pw.Exponent()))
}

// IndicatorGroupL1UnitBall is zero where the pointwise p-norm stays below one
// everywhere and +Inf otherwise. It is the conjugate of a group L1 norm.
type IndicatorGroupL1UnitBall struct {
	attrs
	pw *operator.PointwiseNorm
}

// NewIndicatorGroupL1UnitBall returns the indicator of the set of vector
// fields whose pointwise p-norm never exceeds one.
func NewIndicatorGroupL1UnitBall(vfspace *space.Space, p float64) (*IndicatorGroupL1UnitBall, error) {
	if !vfspace.IsProduct() {
		return nil, ErrNotProductSpace
	}
	pw, err := operator.NewPointwiseNorm(vfspace, p)
	if err != nil {
		return nil, ErrNotPowerSpace
	}

	return &IndicatorGroupL1UnitBall{attrs: attrs{domain: vfspace, gradLip: unknownLip()}, pw: pw}, nil
}

// Exponent returns the pointwise exponent p.
func (f *IndicatorGroupL1UnitBall) Exponent() float64 { return f.pw.Exponent() }

func (f *IndicatorGroupL1UnitBall) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	norms, err := f.pw.Apply(x)
	if err != nil {
		return 0, err
	}
	if norms.Max() > 1 {
		return math.Inf(1), nil
	}

	return 0, nil
}

func (f *IndicatorGroupL1UnitBall) Gradient() (operator.Operator, error) {
	return nil, ErrNotImplemented
}

// Proximal is the pointwise projection onto the dual-norm ball, available
// for p ∈ {2, ∞}.
func (f *IndicatorGroupL1UnitBall) Proximal() (prox.Factory, error) {
	p := f.pw.Exponent()
	switch {
	case math.IsInf(p, 1):
		return prox.ConvexConjL1(f.domain), nil
	case p == 2:
		return prox.ConvexConjL1L2(f.domain), nil
	default:
		return nil, ErrNotImplemented
	}
}

func (f *IndicatorGroupL1UnitBall) ConvexConj() (Functional, error) {
	return NewGroupL1Norm(f.domain, conjExponent(f.pw.Exponent()))
}
