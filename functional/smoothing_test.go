package functional_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaiyangshi-Ito/odl/functional"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// TestHuber_Evaluate checks both regimes of the pointwise smoothing.
func TestHuber_Evaluate(t *testing.T) {
	sp := space.Rn(2)
	f, err := functional.NewHuber(sp, 0.5)
	require.NoError(t, err)

	// Both magnitudes above γ: Σ(|v| − γ/2).
	large, _ := sp.Element(1, -1)
	evalAt(t, f, large, 1.5, 1e-12)

	// One magnitude below γ: v²/(2γ).
	small, _ := sp.Element(0.2, 0)
	evalAt(t, f, small, 0.04, 1e-12)

	assert.Equal(t, 2.0, f.GradLipschitz(), "the gradient is 1/γ-Lipschitz")

	_, err = functional.NewHuber(sp, -1)
	assert.ErrorIs(t, err, functional.ErrNegativeSmoothing)
}

// TestHuber_ZeroGamma degenerates to the L1 norm.
func TestHuber_ZeroGamma(t *testing.T) {
	sp := space.Rn(3)
	f, err := functional.NewHuber(sp, 0)
	require.NoError(t, err)

	x, _ := sp.Element(3, -4, 0)
	want, err := functional.NewL1Norm(sp).Evaluate(x)
	require.NoError(t, err)
	evalAt(t, f, x, want, 1e-12, "γ = 0 reproduces the L1 norm")
	assert.True(t, math.IsInf(f.GradLipschitz(), 1))
}

// TestHuber_ProductSpace uses the pointwise 2-norm and matches the group L1
// norm at γ = 0.
func TestHuber_ProductSpace(t *testing.T) {
	pow := space.Power(space.Rn(2), 2)
	f, err := functional.NewHuber(pow, 0)
	require.NoError(t, err)

	x, _ := pow.Element(3, 3, 4, 4)
	evalAt(t, f, x, 10, 1e-12, "γ = 0 on a power space is the group L1 norm")

	mixed := space.Product(space.Rn(1), space.Rn(2))
	_, err = functional.NewHuber(mixed, 0.1)
	assert.ErrorIs(t, err, functional.ErrNotPowerSpace)
}

// TestHuber_Gradient is x/γ inside and x/‖x‖ outside the smoothing region.
func TestHuber_Gradient(t *testing.T) {
	sp := space.Rn(2)
	f, err := functional.NewHuber(sp, 0.5)
	require.NoError(t, err)

	x, _ := sp.Element(2, 0.1)
	g := gradAt(t, f, x)
	assert.InDelta(t, 1, g.Flatten()[0], 1e-12, "large entries normalize to unit magnitude")
	assert.InDelta(t, 0.2, g.Flatten()[1], 1e-12, "small entries scale by 1/γ")
}

// TestHuber_Proximal shrinks magnitudes by 1 − σ/max(‖x‖, γ+σ).
func TestHuber_Proximal(t *testing.T) {
	sp := space.Rn(2)
	f, err := functional.NewHuber(sp, 1)
	require.NoError(t, err)

	x, _ := sp.Element(3, 0)
	y := proxAt(t, f, x)
	assert.InDelta(t, 2, y.Flatten()[0], 1e-12)
	assert.Equal(t, 0.0, y.Flatten()[1])
}

// TestHuber_Conjugate is the dual-ball indicator plus a γ/2-strongly convex
// quadratic.
func TestHuber_Conjugate(t *testing.T) {
	sp := space.Rn(2)
	f, err := functional.NewHuber(sp, 0.5)
	require.NoError(t, err)

	conj, err := f.ConvexConj()
	require.NoError(t, err)
	inside, _ := sp.Element(1, -1)
	// Indicator part 0, quadratic part (γ/2)·‖y‖² = 0.25·2.
	evalAt(t, conj, inside, 0.5, 1e-12)

	outside, _ := sp.Element(1.5, 0)
	v, err := conj.Evaluate(outside)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "the conjugate is infinite outside the sup ball")
}

// TestMoreauEnvelope_Gradient has the closed form 2x/(1+2σ) for the squared
// L2 norm.
func TestMoreauEnvelope_Gradient(t *testing.T) {
	sp := space.Rn(2)
	env, err := functional.NewMoreauEnvelope(functional.NewL2NormSquared(sp), 0.5)
	require.NoError(t, err)

	x, _ := sp.Element(2, -4)
	g := gradAt(t, env, x)
	assert.InDelta(t, 2, g.Flatten()[0], 1e-12)
	assert.InDelta(t, -4, g.Flatten()[1], 1e-12)
	assert.Equal(t, 2.0, env.GradLipschitz())
}

// TestMoreauEnvelope_L1 smooths the L1 norm into soft-threshold residuals,
// which stay bounded by the step.
func TestMoreauEnvelope_L1(t *testing.T) {
	sp := space.Rn(2)
	env, err := functional.NewMoreauEnvelope(functional.NewL1Norm(sp), 2)
	require.NoError(t, err)

	x, _ := sp.Element(5, -0.5)
	g := gradAt(t, env, x)
	assert.InDelta(t, 1, g.Flatten()[0], 1e-12, "saturated entries have unit gradient")
	assert.InDelta(t, -0.25, g.Flatten()[1], 1e-12, "small entries stay in the quadratic regime")
}

// TestMoreauEnvelope_Restrictions rejects bad parameters and refuses
// evaluation.
func TestMoreauEnvelope_Restrictions(t *testing.T) {
	sp := space.Rn(2)

	_, err := functional.NewMoreauEnvelope(functional.NewL1Norm(sp), 0)
	assert.ErrorIs(t, err, functional.ErrNonPositiveSigma)

	env, err := functional.NewMoreauEnvelope(functional.NewL1Norm(sp), 1)
	require.NoError(t, err)
	_, err = env.Evaluate(sp.Zero())
	assert.ErrorIs(t, err, functional.ErrNotImplemented)
}
