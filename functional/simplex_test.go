package functional_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaiyangshi-Ito/odl/functional"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// TestIndicatorSimplex_Evaluate accepts feasible points within tolerance and
// rejects negative entries or wrong sums.
func TestIndicatorSimplex_Evaluate(t *testing.T) {
	sp := space.Rn(3)
	f, err := functional.NewIndicatorSimplex(sp, 1, 0)
	require.NoError(t, err)

	feasible, _ := sp.Element(0.2, 0.3, 0.5)
	evalAt(t, f, feasible, 0, 0)

	negative, _ := sp.Element(-0.2, 0.7, 0.5)
	v, err := f.Evaluate(negative)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "negative entries are infeasible")

	wrongSum, _ := sp.Element(0.2, 0.3, 0.3)
	v, err = f.Evaluate(wrongSum)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	_, err = functional.NewIndicatorSimplex(sp, 0, 0)
	assert.ErrorIs(t, err, functional.ErrNonPositiveDiameter)
}

// TestIndicatorSimplex_Proximal projects onto the simplex; the result is
// feasible and projecting again changes nothing.
func TestIndicatorSimplex_Proximal(t *testing.T) {
	sp := space.Rn(3)
	f, err := functional.NewIndicatorSimplex(sp, 1, 0)
	require.NoError(t, err)

	x, _ := sp.Element(0.5, 0.5, 2)
	y := proxAt(t, f, x)
	assert.InDelta(t, 1, y.Sum(), 1e-12)
	assert.InDelta(t, 1, y.Flatten()[2], 1e-12)
	evalAt(t, f, y, 0, 0, "the projection is feasible")

	again := proxAt(t, f, y)
	assert.InDelta(t, 0, y.Dist(again), 1e-12, "projection is idempotent")
}

// TestIndicatorSimplex_MissingForms has no gradient or conjugate.
func TestIndicatorSimplex_MissingForms(t *testing.T) {
	f, err := functional.NewIndicatorSimplex(space.Rn(3), 1, 0)
	require.NoError(t, err)

	_, err = f.Gradient()
	assert.ErrorIs(t, err, functional.ErrNotImplemented)
	_, err = f.ConvexConj()
	assert.ErrorIs(t, err, functional.ErrNotImplemented)
}

// TestIndicatorSumConstraint_Evaluate checks the relative sum tolerance.
func TestIndicatorSumConstraint_Evaluate(t *testing.T) {
	sp := space.Rn(3)
	f := functional.NewIndicatorSumConstraint(sp, 9, 0)

	ok, _ := sp.Element(2, 3, 4)
	evalAt(t, f, ok, 0, 0)

	off, _ := sp.Element(2, 3, 5)
	v, err := f.Evaluate(off)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

// TestIndicatorSumConstraint_Proximal is the uniform shift onto the
// hyperplane.
func TestIndicatorSumConstraint_Proximal(t *testing.T) {
	sp := space.Rn(3)
	f := functional.NewIndicatorSumConstraint(sp, 9, 0)

	x, _ := sp.Element(1, 2, 3)
	y := proxAt(t, f, x)
	assert.Equal(t, []float64{2, 3, 4}, y.Flatten())
	evalAt(t, f, y, 0, 0, "the shifted point satisfies the constraint")
}
