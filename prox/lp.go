package prox

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// L1 returns the proximal factory of the L1 norm: coordinatewise soft
// thresholding. Supports coordinatewise step sizes.
func L1(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := coordSteps(sp.Dim(), sigma)
		if err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			flat := x.Flatten()
			for i, v := range flat {
				flat[i] = softThreshold(v, sig[i])
			}

			return sp.Element(flat...)
		}), nil
	}
}

// softThreshold shrinks v towards zero by t.
func softThreshold(v, t float64) float64 {
	switch {
	case v > t:
		return v - t
	case v < -t:
		return v + t
	default:
		return 0
	}
}

// L2 returns the proximal factory of the (unsquared) L2 norm: global
// shrinkage of the whole element towards the origin.
func L2(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarStep(sigma)
		if err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			norm := x.Norm()
			if norm <= sig {
				return sp.Zero(), nil
			}

			return x.Scale(1 - sig/norm), nil
		}), nil
	}
}

// L2Squared returns the proximal factory of the squared L2 norm:
// x ↦ x/(1+2σ), coordinatewise. Supports coordinatewise step sizes.
func L2Squared(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := coordSteps(sp.Dim(), sigma)
		if err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			flat := x.Flatten()
			for i, v := range flat {
				flat[i] = v / (1 + 2*sig[i])
			}

			return sp.Element(flat...)
		}), nil
	}
}

// LInfty returns the proximal factory of the L∞ norm, computed through the
// Moreau identity against the L1 unit-ball projection:
//
//	prox_{σ‖·‖∞}(x) = x − σ·P_{B_1}(x/σ).
func LInfty(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarStep(sigma)
		if err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			proj, err := ProjectL1Ball(x.Scale(1/sig), 1)
			if err != nil {
				return nil, err
			}

			return x.Sub(proj.Scale(sig)), nil
		}), nil
	}
}

// L1L2 returns the proximal factory of the group L1-L2 norm on a power
// space: pointwise shrinkage of each cross-component vector.
func L1L2(pspace *space.Space) Factory {
	if !pspace.IsProduct() || !pspace.IsPower() {
		return func(sigma ...float64) (operator.Operator, error) {
			return nil, ErrNotPowerSpace
		}
	}

	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarStep(sigma)
		if err != nil {
			return nil, err
		}

		return newOp(pspace, func(x *space.Element) (*space.Element, error) {
			return pointwiseScale(pspace, x, func(norm float64) float64 {
				if norm <= sig {
					return 0
				}

				return 1 - sig/norm
			})
		}), nil
	}
}

// ConvexConjL1 returns the proximal factory of the L1 norm's conjugate, the
// projection onto the L∞ unit ball (coordinatewise clamp to [−1, 1]).
func ConvexConjL1(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		if _, err := scalarStep(sigma); err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			return x.Map(func(v float64) float64 {
				return v / math.Max(1, math.Abs(v))
			}), nil
		}), nil
	}
}

// ConvexConjL1L2 returns the proximal factory of the group L1-L2 norm's
// conjugate: pointwise projection onto the cross-component L2 unit ball.
func ConvexConjL1L2(pspace *space.Space) Factory {
	if !pspace.IsProduct() || !pspace.IsPower() {
		return func(sigma ...float64) (operator.Operator, error) {
			return nil, ErrNotPowerSpace
		}
	}

	return func(sigma ...float64) (operator.Operator, error) {
		if _, err := scalarStep(sigma); err != nil {
			return nil, err
		}

		return newOp(pspace, func(x *space.Element) (*space.Element, error) {
			return pointwiseScale(pspace, x, func(norm float64) float64 {
				if norm <= 1 {
					return 1
				}

				return 1 / norm
			})
		}), nil
	}
}

// ConvexConjL2 returns the proximal factory of the L2 norm's conjugate, the
// projection onto the L2 unit ball.
func ConvexConjL2(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		if _, err := scalarStep(sigma); err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			norm := x.Norm()
			if norm <= 1 {
				return x.Copy(), nil
			}

			return x.Scale(1 / norm), nil
		}), nil
	}
}

// ConvexConjLInfty returns the proximal factory of the L∞ norm's conjugate,
// the projection onto the L1 unit ball.
func ConvexConjLInfty(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		if _, err := scalarStep(sigma); err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			return ProjectL1Ball(x, 1)
		}), nil
	}
}

// pointwiseScale multiplies, at every scalar position t, the cross-component
// vector (x_1[t], ..., x_m[t]) by factor(‖·‖₂) of that vector.
func pointwiseScale(pspace *space.Space, x *space.Element, factor func(norm float64) float64) (*space.Element, error) {
	m := pspace.NumParts()
	comps := make([][]float64, m)
	for i := 0; i < m; i++ {
		comps[i] = x.Part(i).Flatten()
	}
	n := pspace.Part(0).Dim()
	for t := 0; t < n; t++ {
		total := 0.0
		for i := 0; i < m; i++ {
			total += comps[i][t] * comps[i][t]
		}
		f := factor(math.Sqrt(total))
		for i := 0; i < m; i++ {
			comps[i][t] *= f
		}
	}
	flat := make([]float64, 0, pspace.Dim())
	for i := 0; i < m; i++ {
		flat = append(flat, comps[i]...)
	}

	return pspace.Element(flat...)
}
