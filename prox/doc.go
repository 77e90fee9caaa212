// Package prox provides closed-form proximal-operator factories for the
// elementary convex functionals, plus the projection routines they share.
//
// A Factory is a function of the step size σ > 0 returning the proximal
// operator
//
//	prox_{σf}(x) = argmin_y { 1/(2σ)·‖x − y‖² + f(y) },
//
// as an operator.Operator. Factories are stateless and cheap; they are
// constructed fresh on every use and never cache.
//
// Step sizes are variadic: no argument means σ = 1, one argument is a scalar
// step, and, where the underlying proximal separates per coordinate (L1,
// squared L2), one value per scalar entry gives coordinatewise steps. Any
// other count, or a non-positive value, yields ErrStepSize.
//
// The ConvexConj combinator derives the proximal of a Fenchel conjugate from
// the proximal of the original functional via the Moreau decomposition
//
//	prox_{σf*}(x) = x − σ·prox_{f/σ}(x/σ),
//
// so unit-ball projections never have to be reimplemented from scratch.
//
// ProjectSimplex implements the sort-and-threshold algorithm of Duchi,
// Shalev-Shwartz, Singer and Chandra (ICML 2008); ProjectL1Ball and the
// L∞-norm proximal reuse it.
package prox
