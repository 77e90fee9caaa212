// Package functional implements a library of convex functionals, maps from
// a vector space into the extended reals, with four mutually consistent
// contracts per functional: value, gradient, convex conjugate and proximal
// operator.
//
// 🚀 What is inside?
//
//   - Norms: LpNorm (with L1/L2 specializations), L2NormSquared,
//     GroupL1Norm and its dual unit-ball indicator.
//   - Indicators: IndicatorZero, IndicatorBox / IndicatorNonnegativity,
//     IndicatorLpUnitBall, IndicatorSimplex, IndicatorSumConstraint,
//     IndicatorNuclearNormUnitBall.
//   - Divergences: the Kullback–Leibler family, four functionals forming
//     two Fenchel-conjugate pairs.
//   - Algebraic composites: SeparableSum, QuadraticForm,
//     ConstantFunctional/ZeroFunctional, ScalingFunctional.
//   - Matrix-valued: NuclearNorm via per-point singular value decomposition.
//   - Smoothing: Huber and the generic MoreauEnvelope.
//   - Combinators: Scale, Translate, Add, NewQuadraticPerturb.
//
// ✨ Contracts and conventions:
//
//   - Evaluate returns the extended-real value; points outside the effective
//     domain evaluate to +Inf, never NaN (0·log 0 is 0 by explicit branch).
//   - Gradient, Proximal and ConvexConj validate lazily: a functional with
//     an unsupported exponent constructs fine and only errors when the
//     unsupported property is actually requested (errors.Is against the
//     package sentinels).
//   - Every conjugate is built so that taking it twice reconstructs a
//     functional evaluating identically to the original (Fenchel–Moreau).
//   - Gradient operators and proximal factories are created fresh on each
//     access; nothing is cached and everything is safe for concurrent reads.
package functional
