package functional_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaiyangshi-Ito/odl/functional"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// matrixField is the space of 2×2 matrices over three scalar positions.
func matrixField() *space.Space {
	return space.Power(space.Power(space.Rn(3), 2), 2)
}

// TestNuclearNorm_Evaluate checks the all-ones field: the matrix of ones has
// singular values (2, 0), so the pointwise 2-norm is 2 at each of the three
// positions and the outer 1-norm sums to 6.
func TestNuclearNorm_Evaluate(t *testing.T) {
	sp := matrixField()
	f, err := functional.NewNuclearNorm(sp, 1, 2)
	require.NoError(t, err)

	x, err := sp.Element(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	require.NoError(t, err)
	evalAt(t, f, x, 6, 1e-9)

	// The same field under the nuclear (sv-sum) exponent gives the same
	// value since one singular value vanishes.
	f1, err := functional.NewNuclearNorm(sp, 1, 1)
	require.NoError(t, err)
	evalAt(t, f1, x, 6, 1e-9)
}

// TestNuclearNorm_SpaceValidation needs a doubly nested power space.
func TestNuclearNorm_SpaceValidation(t *testing.T) {
	_, err := functional.NewNuclearNorm(space.Rn(4), 1, 2)
	assert.ErrorIs(t, err, functional.ErrNotProductSpace)

	flat := space.Power(space.Rn(3), 2)
	_, err = functional.NewNuclearNorm(flat, 1, 2)
	assert.ErrorIs(t, err, functional.ErrNotProductSpace)

	mixed := space.Product(space.Power(space.Rn(3), 2), space.Power(space.Rn(3), 3))
	_, err = functional.NewNuclearNorm(mixed, 1, 2)
	assert.ErrorIs(t, err, functional.ErrNotPowerSpace)
}

// TestNuclearNorm_ProximalScalar reduces to scalar shrinkage on a 1×1
// matrix field, where the closed form is easy to verify.
func TestNuclearNorm_ProximalScalar(t *testing.T) {
	sp := space.Power(space.Power(space.Rn(1), 1), 1)
	f, err := functional.NewNuclearNorm(sp, 1, 2)
	require.NoError(t, err)

	x, _ := sp.Element(3)
	y := proxAt(t, f, x)
	assert.InDelta(t, 2, y.Flatten()[0], 1e-9, "a 1×1 matrix shrinks like its absolute value")

	small, _ := sp.Element(0.5)
	y = proxAt(t, f, small)
	assert.InDelta(t, 0, y.Flatten()[0], 1e-9, "values below the step collapse to zero")
}

// TestNuclearNorm_ProximalShrinksValue verifies that the proximal lowers the
// norm and that rank deficiency is preserved.
func TestNuclearNorm_ProximalShrinksValue(t *testing.T) {
	sp := matrixField()
	f, err := functional.NewNuclearNorm(sp, 1, 2)
	require.NoError(t, err)

	x, _ := sp.Element(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	y := proxAt(t, f, x)

	before, err := f.Evaluate(x)
	require.NoError(t, err)
	after, err := f.Evaluate(y)
	require.NoError(t, err)
	assert.Less(t, after, before, "the proximal shrinks the norm")
	// Shrinking the singular vector (2, 0) by σ = 1 leaves norm 1 per point.
	assert.InDelta(t, 3, after, 1e-6)
}

// TestNuclearNorm_ProximalUnsupported errors for exponents without closed
// form.
func TestNuclearNorm_ProximalUnsupported(t *testing.T) {
	sp := matrixField()

	f, err := functional.NewNuclearNorm(sp, 2, 2)
	require.NoError(t, err)
	_, err = f.Proximal()
	assert.ErrorIs(t, err, functional.ErrNotImplemented, "outer exponent must be one")

	f, err = functional.NewNuclearNorm(sp, 1, 3)
	require.NoError(t, err)
	_, err = f.Proximal()
	assert.ErrorIs(t, err, functional.ErrNotImplemented)
}

// TestNuclearNorm_Conjugate is the dual-exponent unit-ball indicator, and
// the double conjugate restores the original exponents.
func TestNuclearNorm_Conjugate(t *testing.T) {
	sp := matrixField()
	f, err := functional.NewNuclearNorm(sp, 1, 2)
	require.NoError(t, err)

	conj, err := f.ConvexConj()
	require.NoError(t, err)

	// A field with pointwise singular values (0.5, 0) lies inside the ball.
	inside, _ := sp.Element(0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25)
	evalAt(t, conj, inside, 0, 0)

	outside, _ := sp.Element(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	v, err := conj.Evaluate(outside)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	biconj, err := conj.ConvexConj()
	require.NoError(t, err)
	norm, ok := biconj.(*functional.NuclearNorm)
	require.True(t, ok)
	assert.Equal(t, 1.0, norm.OuterExponent())
	assert.Equal(t, 2.0, norm.SingularVectorExponent())
}

// TestIndicatorNuclearNormUnitBall_Proximal projects into the ball: the
// result is feasible and interior points pass through.
func TestIndicatorNuclearNormUnitBall_Proximal(t *testing.T) {
	sp := matrixField()
	ball, err := functional.NewIndicatorNuclearNormUnitBall(sp, math.Inf(1), 2)
	require.NoError(t, err)

	outside, _ := sp.Element(3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3)
	y := proxAt(t, ball, outside)
	dual, err := functional.NewNuclearNorm(sp, math.Inf(1), 2)
	require.NoError(t, err)
	v, err := dual.Evaluate(y)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-9, "the projection lands on the sphere of the ball norm")

	inside, _ := sp.Element(0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1)
	y = proxAt(t, ball, inside)
	assert.InDelta(t, 0, y.Dist(inside), 1e-9, "interior points barely move")
}
