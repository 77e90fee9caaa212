package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// QuadraticForm is the functional
//
//	F(x) = ⟨x, A·x⟩ + ⟨b, x⟩ + c,
//
// where the operator A and the vector b are each optional (but not both).
type QuadraticForm struct {
	attrs
	op       operator.Operator
	vector   *space.Element
	constant float64
}

// NewQuadraticForm builds a quadratic form from an operator, a vector and a
// constant. At least one of op and vector must be given; an operator must map
// the domain to itself.
func NewQuadraticForm(op operator.Operator, vector *space.Element, constant float64) (*QuadraticForm, error) {
	if op == nil && vector == nil {
		return nil, ErrNoOperatorOrVector
	}
	var dom *space.Space
	if op != nil {
		if !op.Domain().Equal(op.Range()) {
			return nil, ErrDomainMismatch
		}
		dom = op.Domain()
		if vector != nil && !dom.Contains(vector) {
			return nil, ErrDomainMismatch
		}
	} else {
		dom = vector.Space()
	}
	if vector != nil {
		vector = vector.Copy()
	}
	gradLip := math.NaN()
	if op == nil {
		gradLip = 0
	}

	return &QuadraticForm{
		attrs:    attrs{domain: dom, linear: op == nil && constant == 0, gradLip: gradLip},
		op:       op,
		vector:   vector,
		constant: constant,
	}, nil
}

// Operator returns the quadratic operator A, or nil when absent.
func (f *QuadraticForm) Operator() operator.Operator { return f.op }

// Vector returns a copy of the linear term b, or nil when absent.
func (f *QuadraticForm) Vector() *space.Element {
	if f.vector == nil {
		return nil
	}

	return f.vector.Copy()
}

// Constant returns the constant offset c.
func (f *QuadraticForm) Constant() float64 { return f.constant }

func (f *QuadraticForm) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	total := f.constant
	if f.op != nil {
		y, err := f.op.Apply(x)
		if err != nil {
			return 0, err
		}
		total += x.Inner(y)
	}
	if f.vector != nil {
		total += f.vector.Inner(x)
	}

	return total, nil
}

// Gradient is (A + A*)·x + b, collapsing to 2A·x + b for self-adjoint A.
// A non-self-adjoint operator must expose its adjoint.
func (f *QuadraticForm) Gradient() (operator.Operator, error) {
	var g operator.Operator
	switch {
	case f.op == nil:
		return operator.NewConstant(f.domain, f.vector.Copy()), nil
	case isSelfAdjointOp(f.op):
		g = operator.Scale(2, f.op)
	default:
		adj, ok := f.op.(operator.Adjointable)
		if !ok {
			return nil, ErrNotImplemented
		}
		var err error
		g, err = operator.Sum(f.op, adj.Adjoint())
		if err != nil {
			return nil, err
		}
	}
	if f.vector != nil {
		return operator.WithOffset(g, f.vector)
	}

	return g, nil
}

func isSelfAdjointOp(op operator.Operator) bool {
	sa, ok := op.(operator.SelfAdjoint)

	return ok && sa.IsSelfAdjoint()
}

func (f *QuadraticForm) Proximal() (prox.Factory, error) { return nil, ErrNotImplemented }

// ConvexConj has two closed forms. Without the operator the functional is
// affine and the conjugate is the indicator of the single point {b} with
// value −c. With an invertible operator it is again a quadratic form,
//
//	F*(y) = ⟨y, A⁻¹·y⟩ + ⟨−A⁻*·b − A⁻¹·b, y⟩ + ⟨b, A⁻¹·b⟩ − c.
func (f *QuadraticForm) ConvexConj() (Functional, error) {
	if f.op == nil {
		return Translate(NewIndicatorZero(f.domain, -f.constant), f.vector)
	}
	inv, ok := f.op.(operator.Invertible)
	if !ok {
		return nil, ErrNotImplemented
	}
	opinv, err := inv.Inverse()
	if err != nil {
		return nil, err
	}
	if f.vector == nil {
		return NewQuadraticForm(opinv, nil, -f.constant)
	}
	invB, err := opinv.Apply(f.vector)
	if err != nil {
		return nil, err
	}
	var adjInvB *space.Element
	if isSelfAdjointOp(opinv) {
		adjInvB = invB
	} else {
		adj, ok := opinv.(operator.Adjointable)
		if !ok {
			return nil, ErrNotImplemented
		}
		adjInvB, err = adj.Adjoint().Apply(f.vector)
		if err != nil {
			return nil, err
		}
	}
	vector := adjInvB.Add(invB).Neg()
	constant := f.vector.Inner(invB) - f.constant

	return NewQuadraticForm(opinv, vector, constant)
}
