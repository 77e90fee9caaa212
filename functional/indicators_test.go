package functional_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaiyangshi-Ito/odl/functional"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// TestIndicatorZero covers the value at and away from the origin, the
// all-to-zero proximal and the constant conjugate.
func TestIndicatorZero(t *testing.T) {
	sp := space.Rn(2)
	f := functional.NewIndicatorZero(sp, 2)

	evalAt(t, f, sp.Zero(), 2, 0)
	x, _ := sp.Element(1, 0)
	v, err := f.Evaluate(x)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	y := proxAt(t, f, x)
	assert.Equal(t, []float64{0, 0}, y.Flatten(), "the proximal maps everything to the origin")

	conj, err := f.ConvexConj()
	require.NoError(t, err)
	evalAt(t, conj, x, -2, 0)

	biconj, err := conj.ConvexConj()
	require.NoError(t, err)
	evalAt(t, biconj, sp.Zero(), 2, 0)
}

// TestIndicatorBox accepts interior points, rejects exterior ones and clamps
// in the proximal.
func TestIndicatorBox(t *testing.T) {
	sp := space.Rn(3)
	lo, hi := 0.0, 1.0
	f := functional.NewIndicatorBox(sp, &lo, &hi)

	inside, _ := sp.Element(0, 0.5, 1)
	evalAt(t, f, inside, 0, 0)

	outside, _ := sp.Element(-0.1, 0.5, 1)
	v, err := f.Evaluate(outside)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	y := proxAt(t, f, outside)
	assert.Equal(t, []float64{0, 0.5, 1}, y.Flatten())

	_, err = f.Gradient()
	assert.ErrorIs(t, err, functional.ErrNotImplemented)
}

// TestIndicatorNonnegativity is the one-sided box.
func TestIndicatorNonnegativity(t *testing.T) {
	sp := space.Rn(2)
	f := functional.NewIndicatorNonnegativity(sp)

	big, _ := sp.Element(1000, 0)
	evalAt(t, f, big, 0, 0, "no upper bound")

	neg, _ := sp.Element(-1, 0)
	v, err := f.Evaluate(neg)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

// TestIndicatorLpUnitBall_Proximal projects onto the ball for the supported
// exponents and errors otherwise.
func TestIndicatorLpUnitBall_Proximal(t *testing.T) {
	sp := space.Rn(2)
	x, _ := sp.Element(3, 4)

	ball2 := functional.NewIndicatorLpUnitBall(sp, 2)
	y := proxAt(t, ball2, x)
	assert.InDelta(t, 0.6, y.Flatten()[0], 1e-12)
	assert.InDelta(t, 0.8, y.Flatten()[1], 1e-12)

	ballInf := functional.NewIndicatorLpUnitBall(sp, math.Inf(1))
	y = proxAt(t, ballInf, x)
	assert.Equal(t, []float64{1, 1}, y.Flatten())

	ball1 := functional.NewIndicatorLpUnitBall(sp, 1)
	y = proxAt(t, ball1, x)
	assert.InDelta(t, 1, y.Flatten()[0]+y.Flatten()[1], 1e-12, "projection lands on the L1 sphere")

	ball3 := functional.NewIndicatorLpUnitBall(sp, 3)
	_, err := ball3.Proximal()
	assert.ErrorIs(t, err, functional.ErrNotImplemented)
}

// TestIndicatorLpUnitBall_Conjugate is the dual norm, with special cases for
// the L1 and L2 balls.
func TestIndicatorLpUnitBall_Conjugate(t *testing.T) {
	sp := space.Rn(2)
	x, _ := sp.Element(3, -4)

	conj, err := functional.NewIndicatorLpUnitBall(sp, math.Inf(1)).ConvexConj()
	require.NoError(t, err)
	evalAt(t, conj, x, 7, 0, "support function of the sup ball is the L1 norm")

	conj, err = functional.NewIndicatorLpUnitBall(sp, 2).ConvexConj()
	require.NoError(t, err)
	evalAt(t, conj, x, 5, 0)

	conj, err = functional.NewIndicatorLpUnitBall(sp, 1).ConvexConj()
	require.NoError(t, err)
	evalAt(t, conj, x, 4, 0, "support function of the L1 ball is the sup norm")
}
