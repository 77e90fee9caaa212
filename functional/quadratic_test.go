package functional_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Kaiyangshi-Ito/odl/functional"
	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// TestQuadraticForm_Evaluate checks ⟨x, Ax⟩ + ⟨b, x⟩ + c with a dense matrix.
func TestQuadraticForm_Evaluate(t *testing.T) {
	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{2, 0, 0, 2}))
	sp := a.Domain()
	b, _ := sp.Element(1, 1)

	f, err := functional.NewQuadraticForm(a, b, 3)
	require.NoError(t, err)

	x, _ := sp.Element(1, 2)
	evalAt(t, f, x, 10+3+3, 1e-12)
	assert.False(t, f.IsLinear())
	assert.Equal(t, 3.0, f.Constant())
}

// TestQuadraticForm_VectorOnly is affine and linear for zero constant.
func TestQuadraticForm_VectorOnly(t *testing.T) {
	sp := space.Rn(2)
	b, _ := sp.Element(2, -1)

	f, err := functional.NewQuadraticForm(nil, b, 0)
	require.NoError(t, err)
	assert.True(t, f.IsLinear())

	x, _ := sp.Element(3, 4)
	evalAt(t, f, x, 2, 0)

	grad := gradAt(t, f, x)
	assert.Equal(t, []float64{2, -1}, grad.Flatten(), "the gradient of an affine form is its vector")

	_, err = functional.NewQuadraticForm(nil, nil, 1)
	assert.ErrorIs(t, err, functional.ErrNoOperatorOrVector)
}

// TestQuadraticForm_Gradient is 2A·x + b for a self-adjoint operator.
func TestQuadraticForm_Gradient(t *testing.T) {
	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{2, 0, 0, 2}))
	sp := a.Domain()
	b, _ := sp.Element(1, 1)
	f, err := functional.NewQuadraticForm(a, b, 0)
	require.NoError(t, err)

	x, _ := sp.Element(1, 2)
	grad := gradAt(t, f, x)
	assert.Equal(t, []float64{5, 9}, grad.Flatten())
}

// TestQuadraticForm_GradientNonSymmetric uses A + Aᵀ.
func TestQuadraticForm_GradientNonSymmetric(t *testing.T) {
	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{0, 1, 0, 0}))
	f, err := functional.NewQuadraticForm(a, nil, 0)
	require.NoError(t, err)

	x, _ := a.Domain().Element(1, 2)
	grad := gradAt(t, f, x)
	assert.Equal(t, []float64{2, 1}, grad.Flatten(), "(A + Aᵀ)x for the shift matrix")
}

// TestQuadraticForm_VectorOnlyConjugate is the indicator of the point {b}.
func TestQuadraticForm_VectorOnlyConjugate(t *testing.T) {
	sp := space.Rn(2)
	b, _ := sp.Element(2, -1)
	f, err := functional.NewQuadraticForm(nil, b, 3)
	require.NoError(t, err)

	conj, err := f.ConvexConj()
	require.NoError(t, err)
	evalAt(t, conj, b, -3, 0, "finite only at b, with value −c")

	away, _ := sp.Element(0, 0)
	v, err := conj.Evaluate(away)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

// TestQuadraticForm_Conjugate inverts the operator:
// F*(y) = ⟨y, A⁻¹y⟩ + ⟨−2A⁻¹b, y⟩ + ⟨b, A⁻¹b⟩ − c for symmetric A.
func TestQuadraticForm_Conjugate(t *testing.T) {
	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{2, 0, 0, 2}))
	sp := a.Domain()
	b, _ := sp.Element(1, 1)
	f, err := functional.NewQuadraticForm(a, b, 3)
	require.NoError(t, err)

	conj, err := f.ConvexConj()
	require.NoError(t, err)
	y, _ := sp.Element(2, 0)
	// 0.5·4 + ⟨(−1,−1), (2,0)⟩ + 1 − 3 = 2 − 2 − 2.
	evalAt(t, conj, y, -2, 1e-12)
}

// TestQuadraticForm_Biconjugate takes the conjugate twice for a pure
// quadratic: without a linear term the double conjugate inverts the inverse
// and evaluates identically to the original form.
func TestQuadraticForm_Biconjugate(t *testing.T) {
	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{2, 1, 1, 3}))
	sp := a.Domain()
	f, err := functional.NewQuadraticForm(a, nil, 1.5)
	require.NoError(t, err)

	conj, err := f.ConvexConj()
	require.NoError(t, err)
	biconj, err := conj.ConvexConj()
	require.NoError(t, err)

	for _, coords := range [][]float64{{1, 2}, {-3, 0.5}, {0, 0}} {
		x, err := sp.Element(coords...)
		require.NoError(t, err)
		want, err := f.Evaluate(x)
		require.NoError(t, err)
		got, err := biconj.Evaluate(x)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9)
	}
}

// TestQuadraticForm_ConjugateSingular fails on non-invertible operators.
func TestQuadraticForm_ConjugateSingular(t *testing.T) {
	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{1, 2, 2, 4}))
	f, err := functional.NewQuadraticForm(a, nil, 0)
	require.NoError(t, err)

	_, err = f.ConvexConj()
	assert.ErrorIs(t, err, operator.ErrSingular)
}

// TestQuadraticForm_DomainValidation rejects rectangular operators and
// mismatched vectors.
func TestQuadraticForm_DomainValidation(t *testing.T) {
	rect := operator.NewMatrix(mat.NewDense(1, 2, []float64{1, 2}))
	_, err := functional.NewQuadraticForm(rect, nil, 0)
	assert.ErrorIs(t, err, functional.ErrDomainMismatch)

	a := operator.NewMatrix(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	foreign, _ := space.Rn(3).Element(1, 2, 3)
	_, err = functional.NewQuadraticForm(a, foreign, 0)
	assert.ErrorIs(t, err, functional.ErrDomainMismatch)
}
