package functional

import (
	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// scaledFunctional is s·f for a positive constant s.
type scaledFunctional struct {
	attrs
	f Functional
	s float64
}

// Scale returns the functional x ↦ s·f(x). The constant must be positive so
// that convexity is preserved.
func Scale(f Functional, s float64) (Functional, error) {
	if s <= 0 {
		return nil, ErrNonPositiveScale
	}

	return &scaledFunctional{
		attrs: attrs{domain: f.Domain(), linear: f.IsLinear(), gradLip: s * f.GradLipschitz()},
		f:     f,
		s:     s,
	}, nil
}

func (c *scaledFunctional) Evaluate(x *space.Element) (float64, error) {
	v, err := c.f.Evaluate(x)
	if err != nil {
		return 0, err
	}

	return c.s * v, nil
}

func (c *scaledFunctional) Gradient() (operator.Operator, error) {
	g, err := c.f.Gradient()
	if err != nil {
		return nil, err
	}

	return operator.Scale(c.s, g), nil
}

// Proximal folds the constant into the step size: prox_{σ(sf)} = prox_{(sσ)f}.
func (c *scaledFunctional) Proximal() (prox.Factory, error) {
	inner, err := c.f.Proximal()
	if err != nil {
		return nil, err
	}
	s := c.s

	return func(sigma ...float64) (operator.Operator, error) {
		scaled := make([]float64, len(sigma))
		for i, sig := range sigma {
			scaled[i] = s * sig
		}
		if len(scaled) == 0 {
			scaled = []float64{s}
		}

		return inner(scaled...)
	}, nil
}

// ConvexConj uses (s·f)*(y) = s·f*(y/s).
func (c *scaledFunctional) ConvexConj() (Functional, error) {
	fc, err := c.f.ConvexConj()
	if err != nil {
		return nil, err
	}
	inner, err := scaleArgument(fc, 1/c.s)
	if err != nil {
		return nil, err
	}

	return Scale(inner, c.s)
}

// argScaled is x ↦ f(c·x) for a positive constant c.
type argScaled struct {
	attrs
	f Functional
	c float64
}

// scaleArgument returns the functional x ↦ f(c·x); it shows up in the
// conjugate of a scaled functional.
func scaleArgument(f Functional, c float64) (Functional, error) {
	if c <= 0 {
		return nil, ErrNonPositiveScale
	}

	return &argScaled{
		attrs: attrs{domain: f.Domain(), linear: f.IsLinear(), gradLip: c * c * f.GradLipschitz()},
		f:     f,
		c:     c,
	}, nil
}

func (a *argScaled) Evaluate(x *space.Element) (float64, error) {
	if err := a.checkArg(x); err != nil {
		return 0, err
	}

	return a.f.Evaluate(x.Scale(a.c))
}

func (a *argScaled) Gradient() (operator.Operator, error) {
	g, err := a.f.Gradient()
	if err != nil {
		return nil, err
	}
	c := a.c

	return newMapOp(a.domain, func(x *space.Element) (*space.Element, error) {
		y, err := g.Apply(x.Scale(c))
		if err != nil {
			return nil, err
		}

		return y.Scale(c), nil
	}), nil
}

// Proximal uses prox_{σ f(c·)}(x) = (1/c)·prox_{c²σ f}(c·x).
func (a *argScaled) Proximal() (prox.Factory, error) {
	inner, err := a.f.Proximal()
	if err != nil {
		return nil, err
	}
	c := a.c

	return func(sigma ...float64) (operator.Operator, error) {
		scaled := make([]float64, len(sigma))
		for i, sig := range sigma {
			scaled[i] = c * c * sig
		}
		if len(scaled) == 0 {
			scaled = []float64{c * c}
		}
		op, err := inner(scaled...)
		if err != nil {
			return nil, err
		}

		return newMapOp(a.domain, func(x *space.Element) (*space.Element, error) {
			y, err := op.Apply(x.Scale(c))
			if err != nil {
				return nil, err
			}

			return y.Scale(1 / c), nil
		}), nil
	}, nil
}

// ConvexConj uses (f(c·))*(y) = f*(y/c).
func (a *argScaled) ConvexConj() (Functional, error) {
	fc, err := a.f.ConvexConj()
	if err != nil {
		return nil, err
	}

	return scaleArgument(fc, 1/a.c)
}

// translated is x ↦ f(x − y).
type translated struct {
	attrs
	f Functional
	y *space.Element
}

// Translate returns the functional x ↦ f(x − y) for a shift y in the domain
// of f.
func Translate(f Functional, y *space.Element) (Functional, error) {
	if !f.Domain().Contains(y) {
		return nil, ErrDomainMismatch
	}

	return &translated{
		attrs: attrs{domain: f.Domain(), linear: false, gradLip: f.GradLipschitz()},
		f:     f,
		y:     y.Copy(),
	}, nil
}

// Shift returns a copy of the translation vector.
func (t *translated) Shift() *space.Element { return t.y.Copy() }

// Inner returns the translated functional.
func (t *translated) Inner() Functional { return t.f }

func (t *translated) Evaluate(x *space.Element) (float64, error) {
	if err := t.checkArg(x); err != nil {
		return 0, err
	}

	return t.f.Evaluate(x.Sub(t.y))
}

func (t *translated) Gradient() (operator.Operator, error) {
	g, err := t.f.Gradient()
	if err != nil {
		return nil, err
	}
	y := t.y

	return newMapOp(t.domain, func(x *space.Element) (*space.Element, error) {
		return g.Apply(x.Sub(y))
	}), nil
}

// Proximal uses prox_{σ f(·−y)}(x) = y + prox_{σf}(x − y).
func (t *translated) Proximal() (prox.Factory, error) {
	inner, err := t.f.Proximal()
	if err != nil {
		return nil, err
	}
	y := t.y

	return func(sigma ...float64) (operator.Operator, error) {
		op, err := inner(sigma...)
		if err != nil {
			return nil, err
		}

		return newMapOp(t.domain, func(x *space.Element) (*space.Element, error) {
			p, err := op.Apply(x.Sub(y))
			if err != nil {
				return nil, err
			}

			return p.Add(y), nil
		}), nil
	}, nil
}

// ConvexConj uses (f(·−y))*(z) = f*(z) + ⟨z, y⟩.
func (t *translated) ConvexConj() (Functional, error) {
	fc, err := t.f.ConvexConj()
	if err != nil {
		return nil, err
	}

	return NewQuadraticPerturb(fc, 0, t.y, 0)
}

// funcSum is f + g on a shared domain.
type funcSum struct {
	attrs
	f, g Functional
}

// Add returns the functional x ↦ f(x) + g(x). The operands must share their
// domain. The sum has no generic proximal or conjugate closed form.
func Add(f, g Functional) (Functional, error) {
	if !f.Domain().Equal(g.Domain()) {
		return nil, ErrDomainMismatch
	}

	return &funcSum{
		attrs: attrs{
			domain:  f.Domain(),
			linear:  f.IsLinear() && g.IsLinear(),
			gradLip: f.GradLipschitz() + g.GradLipschitz(),
		},
		f: f,
		g: g,
	}, nil
}

func (s *funcSum) Evaluate(x *space.Element) (float64, error) {
	vf, err := s.f.Evaluate(x)
	if err != nil {
		return 0, err
	}
	vg, err := s.g.Evaluate(x)
	if err != nil {
		return 0, err
	}

	return vf + vg, nil
}

func (s *funcSum) Gradient() (operator.Operator, error) {
	gf, err := s.f.Gradient()
	if err != nil {
		return nil, err
	}
	gg, err := s.g.Gradient()
	if err != nil {
		return nil, err
	}

	return operator.Sum(gf, gg)
}

func (s *funcSum) Proximal() (prox.Factory, error) { return nil, ErrNotImplemented }

func (s *funcSum) ConvexConj() (Functional, error) { return nil, ErrNotImplemented }

// QuadraticPerturb is f(x) + a·‖x‖² + ⟨u, x⟩ + c.
type QuadraticPerturb struct {
	attrs
	f Functional
	a float64
	u *space.Element
	c float64
}

// NewQuadraticPerturb perturbs f by a quadratic a·‖x‖², a linear term ⟨u, x⟩
// and a constant c. The coefficient a must be non-negative; u may be nil.
func NewQuadraticPerturb(f Functional, a float64, u *space.Element, c float64) (*QuadraticPerturb, error) {
	if a < 0 {
		return nil, ErrNegativeQuadCoeff
	}
	if u != nil && !f.Domain().Contains(u) {
		return nil, ErrDomainMismatch
	}
	if u != nil {
		u = u.Copy()
	}

	return &QuadraticPerturb{
		attrs: attrs{
			domain:  f.Domain(),
			linear:  f.IsLinear() && a == 0,
			gradLip: f.GradLipschitz() + 2*a,
		},
		f: f,
		a: a,
		u: u,
		c: c,
	}, nil
}

// Inner returns the perturbed functional.
func (q *QuadraticPerturb) Inner() Functional { return q.f }

// QuadraticCoeff returns the coefficient of ‖x‖².
func (q *QuadraticPerturb) QuadraticCoeff() float64 { return q.a }

// LinearTerm returns a copy of the linear term, or nil when absent.
func (q *QuadraticPerturb) LinearTerm() *space.Element {
	if q.u == nil {
		return nil
	}

	return q.u.Copy()
}

// Constant returns the constant offset.
func (q *QuadraticPerturb) Constant() float64 { return q.c }

func (q *QuadraticPerturb) Evaluate(x *space.Element) (float64, error) {
	v, err := q.f.Evaluate(x)
	if err != nil {
		return 0, err
	}
	v += q.c
	if q.a != 0 {
		v += q.a * x.Inner(x)
	}
	if q.u != nil {
		v += q.u.Inner(x)
	}

	return v, nil
}

func (q *QuadraticPerturb) Gradient() (operator.Operator, error) {
	g, err := q.f.Gradient()
	if err != nil {
		return nil, err
	}
	if q.a != 0 {
		g, err = operator.Sum(g, operator.NewScaling(q.domain, 2*q.a))
		if err != nil {
			return nil, err
		}
	}
	if q.u != nil {
		g, err = operator.WithOffset(g, q.u)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Proximal uses
//
//	prox_{σ(f + a‖·‖² + ⟨u,·⟩)}(x) = prox_{σ/(2σa+1) f}((x − σu)/(2σa+1)).
func (q *QuadraticPerturb) Proximal() (prox.Factory, error) {
	inner, err := q.f.Proximal()
	if err != nil {
		return nil, err
	}
	a, u := q.a, q.u

	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarSigma(sigma)
		if err != nil {
			return nil, err
		}
		scale := 2*sig*a + 1
		op, err := inner(sig / scale)
		if err != nil {
			return nil, err
		}

		return newMapOp(q.domain, func(x *space.Element) (*space.Element, error) {
			arg := x
			if u != nil {
				arg = arg.Sub(u.Scale(sig))
			}

			return op.Apply(arg.Scale(1 / scale))
		}), nil
	}, nil
}

// ConvexConj has a closed form only without the quadratic term:
//
//	(f + ⟨u,·⟩ + c)*(y) = f*(y − u) − c.
func (q *QuadraticPerturb) ConvexConj() (Functional, error) {
	if q.a != 0 {
		return nil, ErrNotImplemented
	}
	fc, err := q.f.ConvexConj()
	if err != nil {
		return nil, err
	}
	if q.u != nil {
		fc, err = Translate(fc, q.u)
		if err != nil {
			return nil, err
		}
	}
	if q.c == 0 {
		return fc, nil
	}

	return NewQuadraticPerturb(fc, 0, nil, -q.c)
}
