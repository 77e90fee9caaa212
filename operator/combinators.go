package operator

import "github.com/Kaiyangshi-Ito/odl/space"

// scaled is a·op.
type scaled struct {
	a  float64
	op Operator
}

// Scale returns the operator x ↦ a·op(x).
func Scale(a float64, op Operator) Operator { return &scaled{a: a, op: op} }

func (o *scaled) Domain() *space.Space { return o.op.Domain() }
func (o *scaled) Range() *space.Space  { return o.op.Range() }
func (o *scaled) IsLinear() bool       { return o.op.IsLinear() }

func (o *scaled) Apply(x *space.Element) (*space.Element, error) {
	y, err := o.op.Apply(x)
	if err != nil {
		return nil, err
	}

	return y.Scale(o.a), nil
}

// opSum is a + b applied pointwise.
type opSum struct {
	a, b Operator
}

// Sum returns the operator x ↦ a(x) + b(x). The operands must share domain
// and range.
func Sum(a, b Operator) (Operator, error) {
	if !a.Domain().Equal(b.Domain()) || !a.Range().Equal(b.Range()) {
		return nil, ErrDomainMismatch
	}

	return &opSum{a: a, b: b}, nil
}

func (o *opSum) Domain() *space.Space { return o.a.Domain() }
func (o *opSum) Range() *space.Space  { return o.a.Range() }
func (o *opSum) IsLinear() bool       { return o.a.IsLinear() && o.b.IsLinear() }

func (o *opSum) Apply(x *space.Element) (*space.Element, error) {
	ya, err := o.a.Apply(x)
	if err != nil {
		return nil, err
	}
	yb, err := o.b.Apply(x)
	if err != nil {
		return nil, err
	}

	return ya.Add(yb), nil
}

// offset is op followed by adding a fixed vector; an affine map.
type offset struct {
	op Operator
	v  *space.Element
}

// WithOffset returns the affine operator x ↦ op(x) + v. The vector must
// belong to the range of op.
func WithOffset(op Operator, v *space.Element) (Operator, error) {
	if !op.Range().Contains(v) {
		return nil, ErrDomainMismatch
	}

	return &offset{op: op, v: v}, nil
}

func (o *offset) Domain() *space.Space { return o.op.Domain() }
func (o *offset) Range() *space.Space  { return o.op.Range() }
func (o *offset) IsLinear() bool       { return false }

func (o *offset) Apply(x *space.Element) (*space.Element, error) {
	y, err := o.op.Apply(x)
	if err != nil {
		return nil, err
	}

	return y.Add(o.v), nil
}
