package functional

import (
	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// ConstantFunctional takes the same value everywhere. It is linear exactly
// when that value is zero.
type ConstantFunctional struct {
	attrs
	constant float64
}

// NewConstantFunctional returns the functional x ↦ constant on sp.
func NewConstantFunctional(sp *space.Space, constant float64) *ConstantFunctional {
	return &ConstantFunctional{
		attrs:    attrs{domain: sp, linear: constant == 0, gradLip: 0},
		constant: constant,
	}
}

// NewZeroFunctional returns the functional that is zero everywhere on sp.
func NewZeroFunctional(sp *space.Space) *ConstantFunctional {
	return NewConstantFunctional(sp, 0)
}

// Constant returns the constant value.
func (f *ConstantFunctional) Constant() float64 { return f.constant }

func (f *ConstantFunctional) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}

	return f.constant, nil
}

func (f *ConstantFunctional) Gradient() (operator.Operator, error) {
	return operator.NewZero(f.domain), nil
}

// Proximal is the identity for every step size.
func (f *ConstantFunctional) Proximal() (prox.Factory, error) {
	return prox.ConstFunc(f.domain), nil
}

// ConvexConj is the indicator of {0} taking the value −constant there.
func (f *ConstantFunctional) ConvexConj() (Functional, error) {
	return NewIndicatorZero(f.domain, -f.constant), nil
}

// ScalingFunctional is the linear functional t ↦ scale·t on the real line.
type ScalingFunctional struct {
	attrs
	scale float64
}

// NewScalingFunctional returns the functional t ↦ scale·t on R¹.
func NewScalingFunctional(scale float64) *ScalingFunctional {
	return &ScalingFunctional{
		attrs: attrs{domain: space.Rn(1), linear: true, gradLip: 0},
		scale: scale,
	}
}

// NewIdentityFunctional returns the functional t ↦ t on R¹.
func NewIdentityFunctional() *ScalingFunctional { return NewScalingFunctional(1) }

// Scale returns the slope.
func (f *ScalingFunctional) Scale() float64 { return f.scale }

func (f *ScalingFunctional) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}

	return f.scale * x.Data()[0], nil
}

func (f *ScalingFunctional) Gradient() (operator.Operator, error) {
	return operator.NewConstant(f.domain, f.domain.Const(f.scale)), nil
}

// Proximal shifts by the slope: prox_{σf}(t) = t − σ·scale.
func (f *ScalingFunctional) Proximal() (prox.Factory, error) {
	s := f.scale
	dom := f.domain

	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarSigma(sigma)
		if err != nil {
			return nil, err
		}

		return newMapOp(dom, func(x *space.Element) (*space.Element, error) {
			return x.AddConst(-sig * s), nil
		}), nil
	}, nil
}

// ConvexConj is the indicator of the single point {scale}.
func (f *ScalingFunctional) ConvexConj() (Functional, error) {
	return Translate(NewIndicatorZero(f.domain, 0), f.domain.Const(f.scale))
}
