package operator

import "github.com/Kaiyangshi-Ito/odl/space"

// Zero maps every element to the zero element of the same space.
type Zero struct {
	sp *space.Space
}

// NewZero returns the zero operator on sp.
func NewZero(sp *space.Space) *Zero { return &Zero{sp: sp} }

func (o *Zero) Domain() *space.Space { return o.sp }
func (o *Zero) Range() *space.Space  { return o.sp }
func (o *Zero) IsLinear() bool       { return true }
func (o *Zero) IsSelfAdjoint() bool  { return true }
func (o *Zero) Adjoint() Operator    { return o }

func (o *Zero) Apply(x *space.Element) (*space.Element, error) {
	if err := checkDomain(o, x); err != nil {
		return nil, err
	}

	return o.sp.Zero(), nil
}

// Identity maps every element to itself.
type Identity struct {
	sp *space.Space
}

// NewIdentity returns the identity operator on sp.
func NewIdentity(sp *space.Space) *Identity { return &Identity{sp: sp} }

func (o *Identity) Domain() *space.Space { return o.sp }
func (o *Identity) Range() *space.Space  { return o.sp }
func (o *Identity) IsLinear() bool       { return true }
func (o *Identity) IsSelfAdjoint() bool  { return true }
func (o *Identity) Adjoint() Operator    { return o }

func (o *Identity) Inverse() (Operator, error) { return o, nil }

func (o *Identity) Apply(x *space.Element) (*space.Element, error) {
	if err := checkDomain(o, x); err != nil {
		return nil, err
	}

	return x.Copy(), nil
}

// Scaling multiplies every element by a fixed scalar.
type Scaling struct {
	sp *space.Space
	a  float64
}

// NewScaling returns the operator x ↦ a·x on sp.
func NewScaling(sp *space.Space, a float64) *Scaling { return &Scaling{sp: sp, a: a} }

// Scalar returns the scaling factor.
func (o *Scaling) Scalar() float64 { return o.a }

func (o *Scaling) Domain() *space.Space { return o.sp }
func (o *Scaling) Range() *space.Space  { return o.sp }
func (o *Scaling) IsLinear() bool       { return true }
func (o *Scaling) IsSelfAdjoint() bool  { return true }
func (o *Scaling) Adjoint() Operator    { return o }

// Inverse returns scaling by 1/a, or ErrNotInvertible when a is zero.
func (o *Scaling) Inverse() (Operator, error) {
	if o.a == 0 {
		return nil, ErrNotInvertible
	}

	return NewScaling(o.sp, 1/o.a), nil
}

func (o *Scaling) Apply(x *space.Element) (*space.Element, error) {
	if err := checkDomain(o, x); err != nil {
		return nil, err
	}

	return x.Scale(o.a), nil
}

// Constant maps every element of the domain to one fixed element.
type Constant struct {
	dom   *space.Space
	value *space.Element
}

// NewConstant returns the operator mapping everything in dom to value.
func NewConstant(dom *space.Space, value *space.Element) *Constant {
	return &Constant{dom: dom, value: value}
}

// Value returns the constant output element.
func (o *Constant) Value() *space.Element { return o.value }

func (o *Constant) Domain() *space.Space { return o.dom }
func (o *Constant) Range() *space.Space  { return o.value.Space() }
func (o *Constant) IsLinear() bool       { return false }

func (o *Constant) Apply(x *space.Element) (*space.Element, error) {
	if err := checkDomain(o, x); err != nil {
		return nil, err
	}

	return o.value.Copy(), nil
}
