package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// IndicatorZero is zero at the origin (shifted by an optional constant) and
// +Inf everywhere else. It is the conjugate of a constant functional.
type IndicatorZero struct {
	attrs
	constant float64
}

// NewIndicatorZero returns the indicator of {0} on sp, taking the given value
// at the origin instead of zero.
func NewIndicatorZero(sp *space.Space, constant float64) *IndicatorZero {
	return &IndicatorZero{attrs: attrs{domain: sp, gradLip: unknownLip()}, constant: constant}
}

// Constant returns the value taken at the origin.
func (f *IndicatorZero) Constant() float64 { return f.constant }

func (f *IndicatorZero) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	if x.Norm() == 0 {
		return f.constant, nil
	}

	return math.Inf(1), nil
}

func (f *IndicatorZero) Gradient() (operator.Operator, error) { return nil, ErrNotImplemented }

// Proximal maps every element to the origin.
func (f *IndicatorZero) Proximal() (prox.Factory, error) {
	sp := f.domain

	return func(sigma ...float64) (operator.Operator, error) {
		return operator.NewZero(sp), nil
	}, nil
}

func (f *IndicatorZero) ConvexConj() (Functional, error) {
	return NewConstantFunctional(f.domain, -f.constant), nil
}

// IndicatorBox is zero inside the coordinatewise interval [lower, upper] and
// +Inf outside. A nil bound leaves that side unbounded.
type IndicatorBox struct {
	attrs
	lower, upper *float64
}

// NewIndicatorBox returns the indicator of the box with the given bounds.
func NewIndicatorBox(sp *space.Space, lower, upper *float64) *IndicatorBox {
	return &IndicatorBox{attrs: attrs{domain: sp, gradLip: unknownLip()}, lower: lower, upper: upper}
}

// NewIndicatorNonnegativity returns the indicator of the non-negative orthant.
func NewIndicatorNonnegativity(sp *space.Space) *IndicatorBox {
	zero := 0.0

	return NewIndicatorBox(sp, &zero, nil)
}

// Evaluate projects onto the box and checks the distance, so that the point
// counts as inside exactly when clamping does not move it.
func (f *IndicatorBox) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	factory := prox.Box(f.domain, f.lower, f.upper)
	op, err := factory()
	if err != nil {
		return 0, err
	}
	proj, err := op.Apply(x)
	if err != nil {
		return 0, err
	}
	if x.Dist(proj) > 0 {
		return math.Inf(1), nil
	}

	return 0, nil
}

func (f *IndicatorBox) Gradient() (operator.Operator, error) { return nil, ErrNotImplemented }

func (f *IndicatorBox) Proximal() (prox.Factory, error) {
	return prox.Box(f.domain, f.lower, f.upper), nil
}

func (f *IndicatorBox) ConvexConj() (Functional, error) { return nil, ErrNotImplemented }

// IndicatorLpUnitBall is zero on {‖x‖_p ≤ 1} and +Inf outside. It is the
// conjugate of the norm with the Hölder-conjugate exponent.
type IndicatorLpUnitBall struct {
	attrs
	norm *LpNorm
}

// NewIndicatorLpUnitBall returns the indicator of the p-norm unit ball on sp.
func NewIndicatorLpUnitBall(sp *space.Space, p float64) *IndicatorLpUnitBall {
	return &IndicatorLpUnitBall{
		attrs: attrs{domain: sp, gradLip: unknownLip()},
		norm:  NewLpNorm(sp, p),
	}
}

// Exponent returns the exponent of the ball's norm.
func (f *IndicatorLpUnitBall) Exponent() float64 { return f.norm.Exponent() }

func (f *IndicatorLpUnitBall) Evaluate(x *space.Element) (float64, error) {
	v, err := f.norm.Evaluate(x)
	if err != nil {
		return 0, err
	}
	if v > 1 {
		return math.Inf(1), nil
	}

	return 0, nil
}

func (f *IndicatorLpUnitBall) Gradient() (operator.Operator, error) { return nil, ErrNotImplemented }

// Proximal is the projection onto the ball, available for p ∈ {1, 2, ∞}.
func (f *IndicatorLpUnitBall) Proximal() (prox.Factory, error) {
	p := f.norm.Exponent()
	switch {
	case math.IsInf(p, 1):
		return prox.ConvexConjL1(f.domain), nil
	case p == 2:
		return prox.ConvexConjL2(f.domain), nil
	case p == 1:
		return prox.ConvexConjLInfty(f.domain), nil
	default:
		return nil, ErrNotImplemented
	}
}

// ConvexConj is the norm with the conjugate exponent (the support function
// of the ball).
func (f *IndicatorLpUnitBall) ConvexConj() (Functional, error) {
	p := f.norm.Exponent()
	switch {
	case math.IsInf(p, 1):
		return NewL1Norm(f.domain), nil
	case p == 2:
		return NewL2Norm(f.domain), nil
	default:
		return NewLpNorm(f.domain, conjExponent(p)), nil
	}
}
