package operator

import "github.com/Kaiyangshi-Ito/odl/space"

// Diagonal applies one operator per component of a product-space element:
//
//	(x_1, ..., x_n) ↦ (op_1(x_1), ..., op_n(x_n)).
//
// It is the block-diagonal operator that gradients and proximal maps of
// separable sums are built from.
type Diagonal struct {
	ops []Operator
	dom *space.Space
	ran *space.Space
}

// NewDiagonal returns the block-diagonal operator of the given parts.
func NewDiagonal(ops ...Operator) (*Diagonal, error) {
	if len(ops) == 0 {
		return nil, ErrEmptyDiagonal
	}
	doms := make([]*space.Space, len(ops))
	rans := make([]*space.Space, len(ops))
	for i, op := range ops {
		doms[i] = op.Domain()
		rans[i] = op.Range()
	}
	parts := make([]Operator, len(ops))
	copy(parts, ops)

	return &Diagonal{
		ops: parts,
		dom: space.Product(doms...),
		ran: space.Product(rans...),
	}, nil
}

func (o *Diagonal) Domain() *space.Space { return o.dom }
func (o *Diagonal) Range() *space.Space  { return o.ran }

func (o *Diagonal) IsLinear() bool {
	for _, op := range o.ops {
		if !op.IsLinear() {
			return false
		}
	}

	return true
}

func (o *Diagonal) Apply(x *space.Element) (*space.Element, error) {
	if err := checkDomain(o, x); err != nil {
		return nil, err
	}
	flat := make([]float64, 0, o.ran.Dim())
	for i, op := range o.ops {
		yi, err := op.Apply(x.Part(i))
		if err != nil {
			return nil, err
		}
		flat = append(flat, yi.Flatten()...)
	}

	return o.ran.Element(flat...)
}
