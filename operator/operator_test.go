package operator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// TestZeroIdentityScaling covers the three elementary operators.
func TestZeroIdentityScaling(t *testing.T) {
	sp := space.Rn(2)
	x, _ := sp.Element(3, -1)

	y, err := operator.NewZero(sp).Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, y.Flatten())

	y, err = operator.NewIdentity(sp).Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -1}, y.Flatten())

	y, err = operator.NewScaling(sp, -2).Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-6, 2}, y.Flatten())
}

// TestScaling_Inverse checks inversion and the zero-scale failure.
func TestScaling_Inverse(t *testing.T) {
	sp := space.Rn(2)

	inv, err := operator.NewScaling(sp, 4).Inverse()
	require.NoError(t, err)
	x, _ := sp.Element(8, 4)
	y, err := inv.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, y.Flatten())

	_, err = operator.NewScaling(sp, 0).Inverse()
	assert.ErrorIs(t, err, operator.ErrNotInvertible, "scaling by zero has no inverse")
}

// TestApply_DomainMismatch ensures elements of foreign spaces are rejected.
func TestApply_DomainMismatch(t *testing.T) {
	x, _ := space.Rn(3).Element(1, 2, 3)

	_, err := operator.NewIdentity(space.Rn(2)).Apply(x)
	assert.ErrorIs(t, err, operator.ErrDomainMismatch)
}

// TestMatrix_ApplyAdjointInverse verifies the dense matrix operator against
// hand-computed values.
func TestMatrix_ApplyAdjointInverse(t *testing.T) {
	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	x, _ := space.Rn(2).Element(1, 1)

	y, err := a.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y.Flatten())

	adj, err := a.Adjoint().Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, adj.Flatten())

	inv, err := a.Inverse()
	require.NoError(t, err)
	back, err := inv.Apply(y)
	require.NoError(t, err)
	assert.InDelta(t, 1, back.Flatten()[0], 1e-12)
	assert.InDelta(t, 1, back.Flatten()[1], 1e-12)
}

// TestMatrix_Symmetry checks self-adjointness detection and the singular
// inverse error.
func TestMatrix_Symmetry(t *testing.T) {
	sym := operator.NewMatrix(mat.NewDense(2, 2, []float64{2, 1, 1, 2}))
	assert.True(t, sym.IsSelfAdjoint())

	asym := operator.NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	assert.False(t, asym.IsSelfAdjoint())

	singular := operator.NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 2, 4}))
	_, err := singular.Inverse()
	assert.ErrorIs(t, err, operator.ErrSingular)

	rect := operator.NewMatrix(mat.NewDense(1, 2, []float64{1, 2}))
	_, err = rect.Inverse()
	assert.ErrorIs(t, err, operator.ErrNotInvertible, "non-square matrices are not invertible")
}

// TestSum_And_Offset verifies the affine combinators.
func TestSum_And_Offset(t *testing.T) {
	sp := space.Rn(2)
	x, _ := sp.Element(1, 2)

	sum, err := operator.Sum(operator.NewScaling(sp, 2), operator.NewIdentity(sp))
	require.NoError(t, err)
	y, err := sum.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, y.Flatten())
	assert.True(t, sum.IsLinear())

	v, _ := sp.Element(10, 10)
	aff, err := operator.WithOffset(operator.NewIdentity(sp), v)
	require.NoError(t, err)
	y, err = aff.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12}, y.Flatten())
	assert.False(t, aff.IsLinear(), "an offset destroys linearity")

	_, err = operator.Sum(operator.NewIdentity(sp), operator.NewIdentity(space.Rn(3)))
	assert.ErrorIs(t, err, operator.ErrDomainMismatch)
}

// TestDiagonal applies one operator per product component.
func TestDiagonal(t *testing.T) {
	sp := space.Rn(2)
	diag, err := operator.NewDiagonal(operator.NewScaling(sp, 2), operator.NewScaling(sp, -1))
	require.NoError(t, err)

	x, _ := diag.Domain().Element(1, 2, 3, 4)
	y, err := diag.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, -3, -4}, y.Flatten())

	_, err = operator.NewDiagonal()
	assert.ErrorIs(t, err, operator.ErrEmptyDiagonal)
}

// TestPointwiseNorm reduces the component index with several exponents.
func TestPointwiseNorm(t *testing.T) {
	pow := space.Power(space.Rn(2), 2)
	x, _ := pow.Element(3, 0, 4, 0)

	pw2, err := operator.NewPointwiseNorm(pow, 2)
	require.NoError(t, err)
	y, err := pw2.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0}, y.Flatten())

	pw1, err := operator.NewPointwiseNorm(pow, 1)
	require.NoError(t, err)
	y, err = pw1.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0}, y.Flatten())

	pwInf, err := operator.NewPointwiseNorm(pow, math.Inf(1))
	require.NoError(t, err)
	y, err = pwInf.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0}, y.Flatten())

	_, err = operator.NewPointwiseNorm(space.Rn(4), 2)
	assert.ErrorIs(t, err, operator.ErrNotPowerSpace)

	mixed := space.Product(space.Rn(1), space.Rn(2))
	_, err = operator.NewPointwiseNorm(mixed, 2)
	assert.ErrorIs(t, err, operator.ErrNotPowerSpace, "mixed products have no pointwise norm")
}
