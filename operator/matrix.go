package operator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Kaiyangshi-Ito/odl/space"
)

// Matrix is the linear operator x ↦ A·x for a dense matrix A, mapping Rᶜ to
// Rʳ. It exposes its adjoint (the transpose) and, for square matrices, its
// inverse, which is what quadratic-form conjugation needs.
type Matrix struct {
	a   *mat.Dense
	dom *space.Space
	ran *space.Space
	sym bool
}

// NewMatrix returns the operator for the given matrix. The matrix is copied.
func NewMatrix(a mat.Matrix) *Matrix {
	r, c := a.Dims()
	d := mat.DenseCopyOf(a)

	return &Matrix{
		a:   d,
		dom: space.Rn(c),
		ran: space.Rn(r),
		sym: isSymmetric(d),
	}
}

func isSymmetric(a *mat.Dense) bool {
	r, c := a.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if a.At(i, j) != a.At(j, i) {
				return false
			}
		}
	}

	return true
}

// Dense returns a copy of the underlying matrix.
func (o *Matrix) Dense() *mat.Dense { return mat.DenseCopyOf(o.a) }

func (o *Matrix) Domain() *space.Space { return o.dom }
func (o *Matrix) Range() *space.Space  { return o.ran }
func (o *Matrix) IsLinear() bool       { return true }
func (o *Matrix) IsSelfAdjoint() bool  { return o.sym }

// Adjoint returns the transpose operator.
func (o *Matrix) Adjoint() Operator { return NewMatrix(o.a.T()) }

// Inverse returns the operator of A⁻¹, or ErrSingular if A cannot be
// inverted.
func (o *Matrix) Inverse() (Operator, error) {
	r, c := o.a.Dims()
	if r != c {
		return nil, ErrNotInvertible
	}
	var inv mat.Dense
	if err := inv.Inverse(o.a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return NewMatrix(&inv), nil
}

func (o *Matrix) Apply(x *space.Element) (*space.Element, error) {
	if err := checkDomain(o, x); err != nil {
		return nil, err
	}
	if x.Data() == nil {
		return nil, ErrLeafSpaceRequired
	}
	r, _ := o.a.Dims()
	out := mat.NewVecDense(r, nil)
	out.MulVec(o.a, mat.NewVecDense(len(x.Data()), x.Flatten()))

	return o.ran.Element(out.RawVector().Data...)
}
