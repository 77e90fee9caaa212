package prox

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// Huber returns the proximal factory of the Huber functional with smoothing
// gamma ≥ 0. At every point the cross-component (or scalar) magnitude is
// shrunk by the factor 1 − σ/max(‖x‖, γ+σ), which degenerates to soft
// thresholding when gamma is zero.
func Huber(sp *space.Space, gamma float64) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarStep(sigma)
		if err != nil {
			return nil, err
		}
		factor := func(norm float64) float64 {
			f := 1 - sig/math.Max(norm, gamma+sig)
			if f < 0 {
				return 0
			}

			return f
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			if sp.IsProduct() {
				return pointwiseScale(sp, x, factor)
			}

			return x.Map(func(v float64) float64 {
				return v * factor(math.Abs(v))
			}), nil
		}), nil
	}
}

// ConvexConj derives a conjugate's proximal factory from the original
// functional's factory via the Moreau decomposition:
//
//	prox_{σf*}(x) = x − σ·prox_{f/σ}(x/σ).
func ConvexConj(f Factory) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarStep(sigma)
		if err != nil {
			return nil, err
		}
		inner, err := f(1 / sig)
		if err != nil {
			return nil, err
		}

		return newOp(inner.Domain(), func(x *space.Element) (*space.Element, error) {
			y, err := inner.Apply(x.Scale(1 / sig))
			if err != nil {
				return nil, err
			}

			return x.Sub(y.Scale(sig)), nil
		}), nil
	}
}
