package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// LpNorm is the p-norm functional ‖x‖_p for 0 ≤ p ≤ ∞, with p = 0 counting
// nonzero entries. Gradient, proximal and conjugate are available for the
// exponents with closed forms; everything else errors lazily.
type LpNorm struct {
	attrs
	p float64
}

// NewLpNorm returns the p-norm on sp.
func NewLpNorm(sp *space.Space, p float64) *LpNorm {
	return &LpNorm{attrs: attrs{domain: sp, gradLip: unknownLip()}, p: p}
}

// NewL1Norm returns the norm ‖x‖₁ = Σ|x_i| on sp.
func NewL1Norm(sp *space.Space) *LpNorm { return NewLpNorm(sp, 1) }

// NewL2Norm returns the Euclidean norm on sp.
func NewL2Norm(sp *space.Space) *LpNorm { return NewLpNorm(sp, 2) }

// Exponent returns the norm exponent p.
func (f *LpNorm) Exponent() float64 { return f.p }

func (f *LpNorm) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	switch {
	case f.p == 0:
		return float64(x.NonzeroCount()), nil
	case f.p == 1:
		return x.Abs().Sum(), nil
	case f.p == 2:
		return x.Norm(), nil
	case math.IsInf(f.p, 1):
		return x.AbsMax(), nil
	case math.IsInf(f.p, -1):
		return x.AbsMin(), nil
	case !math.IsNaN(f.p):
		total := 0.0
		for _, v := range x.Flatten() {
			total += math.Pow(math.Abs(v), f.p)
		}

		return math.Pow(total, 1/f.p), nil
	default:
		return 0, ErrUnknownExponent
	}
}

// Gradient exists in closed form for p = 1 (the sign, with a flat derivative
// almost everywhere) and p = 2 (x/‖x‖, taken to be zero at the origin).
func (f *LpNorm) Gradient() (operator.Operator, error) {
	switch f.p {
	case 1:
		op := newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
			return x.Sign(), nil
		})
		op.deriv = func(x *space.Element) (operator.Operator, error) {
			return operator.NewZero(f.domain), nil
		}

		return op, nil
	case 2:
		return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
			norm := x.Norm()
			if norm == 0 {
				return f.domain.Zero(), nil
			}

			return x.Scale(1 / norm), nil
		}), nil
	default:
		return nil, ErrNotImplemented
	}
}

func (f *LpNorm) Proximal() (prox.Factory, error) {
	switch {
	case f.p == 1:
		return prox.L1(f.domain), nil
	case f.p == 2:
		return prox.L2(f.domain), nil
	case math.IsInf(f.p, 1):
		return prox.LInfty(f.domain), nil
	default:
		return nil, ErrNotImplemented
	}
}

// ConvexConj is the indicator of the unit ball of the conjugate exponent.
func (f *LpNorm) ConvexConj() (Functional, error) {
	return NewIndicatorLpUnitBall(f.domain, conjExponent(f.p)), nil
}

// L2NormSquared is the squared Euclidean norm ‖x‖² = ⟨x, x⟩.
type L2NormSquared struct {
	attrs
}

// NewL2NormSquared returns the squared Euclidean norm on sp.
func NewL2NormSquared(sp *space.Space) *L2NormSquared {
	return &L2NormSquared{attrs: attrs{domain: sp, gradLip: 2}}
}

func (f *L2NormSquared) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}

	return x.Inner(x), nil
}

func (f *L2NormSquared) Gradient() (operator.Operator, error) {
	return operator.NewScaling(f.domain, 2), nil
}

func (f *L2NormSquared) Proximal() (prox.Factory, error) {
	return prox.L2Squared(f.domain), nil
}

// ConvexConj is (‖·‖²)* = (1/4)‖·‖².
func (f *L2NormSquared) ConvexConj() (Functional, error) {
	return Scale(NewL2NormSquared(f.domain), 0.25)
}
