package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// Functional is a map from a vector space into the extended real numbers.
// Implementations are immutable after construction and safe for concurrent
// use. The four contracts are mutually consistent: the gradient differentiates
// the value, the proximal minimizes value plus quadratic, and the conjugate of
// the conjugate evaluates identically to the original.
type Functional interface {
	// Domain is the space of valid arguments.
	Domain() *space.Space
	// IsLinear reports whether the functional is a linear map.
	IsLinear() bool
	// GradLipschitz returns a Lipschitz bound of the gradient; NaN when no
	// bound is known and +Inf when the gradient is not Lipschitz.
	GradLipschitz() float64
	// Evaluate returns the extended-real value at x. Points outside the
	// effective domain evaluate to +Inf. ErrDomainMismatch is returned if x
	// does not belong to the domain space at all.
	Evaluate(x *space.Element) (float64, error)
	// Gradient returns the gradient as an operator on the domain, or
	// ErrNotImplemented when no closed form exists.
	Gradient() (operator.Operator, error)
	// Proximal returns the proximal factory, or ErrNotImplemented when no
	// closed form exists.
	Proximal() (prox.Factory, error)
	// ConvexConj returns the Fenchel conjugate f*(y) = sup ⟨y,x⟩ − f(x),
	// or ErrNotImplemented when no closed form exists.
	ConvexConj() (Functional, error)
}

// attrs carries the three static properties every functional exposes.
type attrs struct {
	domain  *space.Space
	linear  bool
	gradLip float64
}

func (a attrs) Domain() *space.Space   { return a.domain }
func (a attrs) IsLinear() bool         { return a.linear }
func (a attrs) GradLipschitz() float64 { return a.gradLip }

// checkArg validates that x belongs to the domain.
func (a attrs) checkArg(x *space.Element) error {
	if !a.domain.Contains(x) {
		return ErrDomainMismatch
	}

	return nil
}

// unknownLip marks functionals with no known gradient Lipschitz bound.
func unknownLip() float64 { return math.NaN() }

// mapOp wraps a closure as an operator from a space to itself; gradient
// operators are built from it. An optional derivative closure makes it
// differentiable.
type mapOp struct {
	dom   *space.Space
	fn    func(x *space.Element) (*space.Element, error)
	deriv func(x *space.Element) (operator.Operator, error)
}

func newMapOp(dom *space.Space, fn func(x *space.Element) (*space.Element, error)) *mapOp {
	return &mapOp{dom: dom, fn: fn}
}

func (o *mapOp) Domain() *space.Space { return o.dom }
func (o *mapOp) Range() *space.Space  { return o.dom }
func (o *mapOp) IsLinear() bool       { return false }

func (o *mapOp) Apply(x *space.Element) (*space.Element, error) {
	if !o.dom.Contains(x) {
		return nil, operator.ErrDomainMismatch
	}

	return o.fn(x)
}

// Derivative returns the derivative operator at x when the gradient carries
// one (e.g. the L1 gradient, which is flat almost everywhere).
func (o *mapOp) Derivative(x *space.Element) (operator.Operator, error) {
	if o.deriv == nil {
		return nil, ErrNotImplemented
	}

	return o.deriv(x)
}

// scalarSigma resolves a variadic step list to a single scalar (default 1)
// for proximals that cannot use per-coordinate steps.
func scalarSigma(sigma []float64) (float64, error) {
	switch len(sigma) {
	case 0:
		return 1, nil
	case 1:
		if sigma[0] <= 0 {
			return 0, prox.ErrStepSize
		}

		return sigma[0], nil
	default:
		return 0, prox.ErrStepSize
	}
}

// conjExponent returns the Hölder conjugate q with 1/p + 1/q = 1.
func conjExponent(p float64) float64 {
	switch {
	case p == 1:
		return math.Inf(1)
	case math.IsInf(p, 1):
		return 1
	default:
		return p / (p - 1)
	}
}
