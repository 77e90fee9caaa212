package prox

import (
	"errors"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// Factory builds a proximal operator for a given step size. See the package
// documentation for the step-size conventions.
type Factory func(sigma ...float64) (operator.Operator, error)

var (
	// ErrStepSize is returned for non-positive step sizes or a step-size
	// count the factory does not support.
	ErrStepSize = errors.New("prox: step size must be positive, given as none, one scalar, or one value per coordinate")

	// ErrNotPowerSpace is returned when a pointwise (group) proximal is
	// requested on a space that is not a power product space.
	ErrNotPowerSpace = errors.New("prox: space must be a power product space")
)

// proxOp wraps a closure as an operator on a single space.
type proxOp struct {
	dom *space.Space
	fn  func(x *space.Element) (*space.Element, error)
}

func newOp(dom *space.Space, fn func(x *space.Element) (*space.Element, error)) *proxOp {
	return &proxOp{dom: dom, fn: fn}
}

func (o *proxOp) Domain() *space.Space { return o.dom }
func (o *proxOp) Range() *space.Space  { return o.dom }
func (o *proxOp) IsLinear() bool       { return false }

func (o *proxOp) Apply(x *space.Element) (*space.Element, error) {
	if !o.dom.Contains(x) {
		return nil, operator.ErrDomainMismatch
	}

	return o.fn(x)
}

// scalarStep resolves a variadic step list to a single scalar (default 1).
func scalarStep(sigma []float64) (float64, error) {
	switch len(sigma) {
	case 0:
		return 1, nil
	case 1:
		if sigma[0] <= 0 {
			return 0, ErrStepSize
		}

		return sigma[0], nil
	default:
		return 0, ErrStepSize
	}
}

// coordSteps resolves a variadic step list to one step per coordinate:
// empty broadcasts 1, a single value broadcasts, n values are used as given.
func coordSteps(n int, sigma []float64) ([]float64, error) {
	out := make([]float64, n)
	switch len(sigma) {
	case 0:
		for i := range out {
			out[i] = 1
		}
	case 1:
		if sigma[0] <= 0 {
			return nil, ErrStepSize
		}
		for i := range out {
			out[i] = sigma[0]
		}
	case n:
		for i, s := range sigma {
			if s <= 0 {
				return nil, ErrStepSize
			}
			out[i] = s
		}
	default:
		return nil, ErrStepSize
	}

	return out, nil
}
