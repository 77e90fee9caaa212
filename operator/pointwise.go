package operator

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/space"
)

// PointwiseNorm maps an element of a power space X^m to an element of the
// base space X holding, at every scalar position, the p-norm of the m
// component values at that position. It reduces the inner (component) index
// and is the building block of mixed norms such as the group L1 norm.
type PointwiseNorm struct {
	pspace *space.Space
	base   *space.Space
	p      float64
}

// NewPointwiseNorm returns the pointwise p-norm on the power space pspace.
// The space must be a product of identical factors.
func NewPointwiseNorm(pspace *space.Space, p float64) (*PointwiseNorm, error) {
	if !pspace.IsProduct() || !pspace.IsPower() {
		return nil, ErrNotPowerSpace
	}

	return &PointwiseNorm{pspace: pspace, base: pspace.Part(0), p: p}, nil
}

// Exponent returns the exponent of the pointwise norm.
func (o *PointwiseNorm) Exponent() float64 { return o.p }

func (o *PointwiseNorm) Domain() *space.Space { return o.pspace }
func (o *PointwiseNorm) Range() *space.Space  { return o.base }
func (o *PointwiseNorm) IsLinear() bool       { return false }

func (o *PointwiseNorm) Apply(x *space.Element) (*space.Element, error) {
	if err := checkDomain(o, x); err != nil {
		return nil, err
	}
	m := o.pspace.NumParts()
	comps := make([][]float64, m)
	for i := 0; i < m; i++ {
		comps[i] = x.Part(i).Flatten()
	}
	out := make([]float64, o.base.Dim())
	for t := range out {
		out[t] = vectorNorm(comps, t, o.p)
	}

	return o.base.Element(out...)
}

// vectorNorm computes the p-norm of (comps[0][t], ..., comps[m-1][t]).
func vectorNorm(comps [][]float64, t int, p float64) float64 {
	switch {
	case p == 1:
		total := 0.0
		for _, c := range comps {
			total += math.Abs(c[t])
		}

		return total
	case p == 2:
		total := 0.0
		for _, c := range comps {
			total += c[t] * c[t]
		}

		return math.Sqrt(total)
	case math.IsInf(p, 1):
		max := 0.0
		for _, c := range comps {
			if a := math.Abs(c[t]); a > max {
				max = a
			}
		}

		return max
	default:
		total := 0.0
		for _, c := range comps {
			total += math.Pow(math.Abs(c[t]), p)
		}

		return math.Pow(total, 1/p)
	}
}
