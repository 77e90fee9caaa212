package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// IndicatorSimplex is zero on the scaled standard simplex
// {x ≥ 0, Σx = diameter} and +Inf outside. The sum check uses a relative
// tolerance so that projected points count as feasible.
type IndicatorSimplex struct {
	attrs
	diameter float64
	sumRtol  float64
}

// NewIndicatorSimplex returns the indicator of the simplex with the given
// diameter. A non-positive sumRtol selects the default tolerance
// 1e-10 times the dimension.
func NewIndicatorSimplex(sp *space.Space, diameter, sumRtol float64) (*IndicatorSimplex, error) {
	if diameter <= 0 {
		return nil, ErrNonPositiveDiameter
	}
	if sumRtol <= 0 {
		sumRtol = 1e-10 * float64(sp.Dim())
	}

	return &IndicatorSimplex{
		attrs:    attrs{domain: sp, gradLip: unknownLip()},
		diameter: diameter,
		sumRtol:  sumRtol,
	}, nil
}

// Diameter returns the simplex diameter.
func (f *IndicatorSimplex) Diameter() float64 { return f.diameter }

func (f *IndicatorSimplex) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	sumOK := math.Abs(x.Sum()/f.diameter-1) <= f.sumRtol
	if sumOK && x.Min() >= 0 {
		return 0, nil
	}

	return math.Inf(1), nil
}

func (f *IndicatorSimplex) Gradient() (operator.Operator, error) { return nil, ErrNotImplemented }

// Proximal is the Euclidean projection onto the simplex for every step size.
func (f *IndicatorSimplex) Proximal() (prox.Factory, error) {
	sp, d := f.domain, f.diameter

	return func(sigma ...float64) (operator.Operator, error) {
		return newMapOp(sp, func(x *space.Element) (*space.Element, error) {
			out := sp.Zero()
			if err := prox.ProjectSimplex(x, d, out); err != nil {
				return nil, err
			}

			return out, nil
		}), nil
	}, nil
}

func (f *IndicatorSimplex) ConvexConj() (Functional, error) { return nil, ErrNotImplemented }

// IndicatorSumConstraint is zero on the hyperplane {Σx = sumValue} and +Inf
// outside, with the same relative sum tolerance as the simplex indicator.
type IndicatorSumConstraint struct {
	attrs
	sumValue float64
	sumRtol  float64
}

// NewIndicatorSumConstraint returns the indicator of the constraint
// Σx = sumValue. A non-positive sumRtol selects the default tolerance
// 1e-10 times the dimension.
func NewIndicatorSumConstraint(sp *space.Space, sumValue, sumRtol float64) *IndicatorSumConstraint {
	if sumRtol <= 0 {
		sumRtol = 1e-10 * float64(sp.Dim())
	}

	return &IndicatorSumConstraint{
		attrs:    attrs{domain: sp, gradLip: unknownLip()},
		sumValue: sumValue,
		sumRtol:  sumRtol,
	}
}

// SumValue returns the required sum.
func (f *IndicatorSumConstraint) SumValue() float64 { return f.sumValue }

func (f *IndicatorSumConstraint) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	if math.Abs(x.Sum()/f.sumValue-1) <= f.sumRtol {
		return 0, nil
	}

	return math.Inf(1), nil
}

func (f *IndicatorSumConstraint) Gradient() (operator.Operator, error) {
	return nil, ErrNotImplemented
}

// Proximal is the orthogonal projection onto the hyperplane: a uniform shift.
func (f *IndicatorSumConstraint) Proximal() (prox.Factory, error) {
	sp, s := f.domain, f.sumValue

	return func(sigma ...float64) (operator.Operator, error) {
		return newMapOp(sp, func(x *space.Element) (*space.Element, error) {
			out := sp.Zero()
			if err := prox.ProjectSumConstraint(x, s, out); err != nil {
				return nil, err
			}

			return out, nil
		}), nil
	}, nil
}

func (f *IndicatorSumConstraint) ConvexConj() (Functional, error) {
	return nil, ErrNotImplemented
}
