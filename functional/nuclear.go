package functional

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// svdEps nudges ball projections slightly inside the unit ball so that
// rounding cannot push the result outside (10 times the float64 resolution).
const svdEps = 1e-14

// NuclearNorm is a norm of matrix-valued fields on a doubly nested power
// space (X^m)^n: at every scalar position of X the component values form an
// n×m matrix, the singular values of that matrix are reduced with the inner
// exponent, and the resulting scalar field is reduced with the outer
// exponent,
//
//	F(x) = ‖ t ↦ ‖σ(M_t(x))‖_sv ‖_outer.
//
// With both exponents one this is the classical nuclear norm.
type NuclearNorm struct {
	attrs
	rows, cols int
	base       *space.Space
	outerNorm  *LpNorm
	svExp      float64
}

// NewNuclearNorm returns the nuclear norm on the matrix space sp with the
// given outer and singular-value exponents.
func NewNuclearNorm(sp *space.Space, outerExp, svExp float64) (*NuclearNorm, error) {
	if !sp.IsProduct() || !sp.Part(0).IsProduct() {
		return nil, ErrNotProductSpace
	}
	if !sp.IsPower() || !sp.Part(0).IsPower() {
		return nil, ErrNotPowerSpace
	}
	base := sp.Part(0).Part(0)

	return &NuclearNorm{
		attrs:     attrs{domain: sp, gradLip: unknownLip()},
		rows:      sp.NumParts(),
		cols:      sp.Part(0).NumParts(),
		base:      base,
		outerNorm: NewLpNorm(base, outerExp),
		svExp:     svExp,
	}, nil
}

// OuterExponent returns the exponent of the outer norm.
func (f *NuclearNorm) OuterExponent() float64 { return f.outerNorm.Exponent() }

// SingularVectorExponent returns the exponent applied to singular values.
func (f *NuclearNorm) SingularVectorExponent() float64 { return f.svExp }

// components collects the flat buffer of every matrix entry field x[i][j].
func (f *NuclearNorm) components(x *space.Element) [][][]float64 {
	comps := make([][][]float64, f.rows)
	for i := 0; i < f.rows; i++ {
		comps[i] = make([][]float64, f.cols)
		for j := 0; j < f.cols; j++ {
			comps[i][j] = x.Part(i).Part(j).Flatten()
		}
	}

	return comps
}

// pointMatrix fills a with the n×m matrix formed at scalar position t.
func pointMatrix(a *mat.Dense, comps [][][]float64, t int) {
	for i := range comps {
		for j := range comps[i] {
			a.Set(i, j, comps[i][j][t])
		}
	}
}

func (f *NuclearNorm) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	comps := f.components(x)
	a := mat.NewDense(f.rows, f.cols, nil)
	svnorms := make([]float64, f.base.Dim())
	var svd mat.SVD
	for t := range svnorms {
		pointMatrix(a, comps, t)
		if !svd.Factorize(a, mat.SVDNone) {
			return 0, ErrSVDFailed
		}
		svnorms[t] = pnorm(svd.Values(nil), f.svExp)
	}
	field, err := f.base.Element(svnorms...)
	if err != nil {
		return 0, err
	}

	return f.outerNorm.Evaluate(field)
}

// pnorm reduces a non-negative vector with exponent p.
func pnorm(s []float64, p float64) float64 {
	switch {
	case p == 1:
		total := 0.0
		for _, v := range s {
			total += v
		}

		return total
	case p == 2:
		total := 0.0
		for _, v := range s {
			total += v * v
		}

		return math.Sqrt(total)
	case math.IsInf(p, 1):
		max := 0.0
		for _, v := range s {
			if v > max {
				max = v
			}
		}

		return max
	default:
		total := 0.0
		for _, v := range s {
			total += math.Pow(v, p)
		}

		return math.Pow(total, 1/p)
	}
}

func (f *NuclearNorm) Gradient() (operator.Operator, error) { return nil, ErrNotImplemented }

// Proximal exists for outer exponent one and singular-value exponent in
// {1, 2, ∞}: a pointwise SVD with shrinkage of the singular values.
func (f *NuclearNorm) Proximal() (prox.Factory, error) {
	if f.outerNorm.Exponent() != 1 {
		return nil, ErrNotImplemented
	}
	p := f.svExp
	if p != 1 && p != 2 && !math.IsInf(p, 1) {
		return nil, ErrNotImplemented
	}

	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarSigma(sigma)
		if err != nil {
			return nil, err
		}

		return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
			return f.proxApply(x, sig)
		}), nil
	}, nil
}

func (f *NuclearNorm) proxApply(x *space.Element, sig float64) (*space.Element, error) {
	comps := f.components(x)
	a := mat.NewDense(f.rows, f.cols, nil)
	k := f.rows
	if f.cols < k {
		k = f.cols
	}
	var svd mat.SVD
	var u, v mat.Dense
	for t := 0; t < f.base.Dim(); t++ {
		pointMatrix(a, comps, t)
		if !svd.Factorize(a, mat.SVDThin) {
			return nil, ErrSVDFailed
		}
		s := svd.Values(nil)
		svd.UTo(&u)
		svd.VTo(&v)
		shrinkSingularValues(s, sig, f.svExp)
		for i := 0; i < f.rows; i++ {
			for j := 0; j < f.cols; j++ {
				sum := 0.0
				for l := 0; l < k; l++ {
					sum += u.At(i, l) * s[l] * v.At(j, l)
				}
				comps[i][j][t] = sum
			}
		}
	}
	flat := make([]float64, 0, f.domain.Dim())
	for i := 0; i < f.rows; i++ {
		for j := 0; j < f.cols; j++ {
			flat = append(flat, comps[i][j]...)
		}
	}

	return f.domain.Element(flat...)
}

// shrinkSingularValues overwrites s with the proximal of the inner norm.
// Exponent one soft-thresholds each value, two and ∞ shrink the whole vector
// towards zero by the factor (1−eps) − σ/max(σ, ‖s‖).
func shrinkSingularValues(s []float64, sig, p float64) {
	switch {
	case p == 1:
		for i, v := range s {
			shrunk := v - (sig - svdEps)
			if shrunk < 0 {
				shrunk = 0
			}
			s[i] = shrunk
		}
	default:
		var snorm float64
		if p == 2 {
			snorm = pnorm(s, 2)
		} else {
			snorm = pnorm(s, 1)
		}
		snorm = math.Max(sig, snorm)
		factor := (1 - svdEps) - sig/snorm
		for i := range s {
			s[i] *= factor
		}
	}
}

// ConvexConj is the indicator of the dual nuclear-norm unit ball, obtained
// by conjugating both exponents.
func (f *NuclearNorm) ConvexConj() (Functional, error) {
	return NewIndicatorNuclearNormUnitBall(
		f.domain,
		conjExponent(f.outerNorm.Exponent()),
		conjExponent(f.svExp),
	)
}

// IndicatorNuclearNormUnitBall is zero inside the unit ball of a nuclear
// norm and +Inf outside.
type IndicatorNuclearNormUnitBall struct {
	attrs
	norm *NuclearNorm
}

// NewIndicatorNuclearNormUnitBall returns the indicator of the unit ball of
// the nuclear norm with the given exponents.
func NewIndicatorNuclearNormUnitBall(sp *space.Space, outerExp, svExp float64) (*IndicatorNuclearNormUnitBall, error) {
	norm, err := NewNuclearNorm(sp, outerExp, svExp)
	if err != nil {
		return nil, err
	}

	return &IndicatorNuclearNormUnitBall{attrs: attrs{domain: sp, gradLip: unknownLip()}, norm: norm}, nil
}

func (f *IndicatorNuclearNormUnitBall) Evaluate(x *space.Element) (float64, error) {
	v, err := f.norm.Evaluate(x)
	if err != nil {
		return 0, err
	}
	if v > 1 {
		return math.Inf(1), nil
	}

	return 0, nil
}

func (f *IndicatorNuclearNormUnitBall) Gradient() (operator.Operator, error) {
	return nil, ErrNotImplemented
}

// Proximal is derived from the dual norm's proximal through the Moreau
// decomposition.
func (f *IndicatorNuclearNormUnitBall) Proximal() (prox.Factory, error) {
	conj, err := f.ConvexConj()
	if err != nil {
		return nil, err
	}
	factory, err := conj.Proximal()
	if err != nil {
		return nil, err
	}

	return prox.ConvexConj(factory), nil
}

// ConvexConj is the nuclear norm with both exponents conjugated.
func (f *IndicatorNuclearNormUnitBall) ConvexConj() (Functional, error) {
	return NewNuclearNorm(
		f.domain,
		conjExponent(f.norm.OuterExponent()),
		conjExponent(f.norm.SingularVectorExponent()),
	)
}
