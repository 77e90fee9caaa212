// Package odl is a library of convex functionals: scalar-valued maps on
// finite-dimensional and product vector spaces taking values in the extended
// reals, together with the operator machinery to evaluate, differentiate,
// Fenchel-conjugate and prox-evaluate them in a uniform way.
//
// 🚀 What is in the box?
//
//	A composable convex-analysis toolkit built from four packages:
//	  • space/      — vector spaces (Rⁿ, products, powers) and their elements
//	  • operator/   — domain→range maps: gradients, projections, matrices
//	  • prox/       — closed-form proximal-operator factories
//	  • functional/ — the convex functionals themselves: norms, indicators,
//	    divergences, quadratic forms, nuclear norms, smoothing combinators
//
// ✨ Why choose this library?
//
//   - Four mutually consistent contracts per functional: value, gradient,
//     convex conjugate and proximal operator, honoring the standard
//     convex-analysis identities (Fenchel–Moreau biconjugacy, conjugate
//     exponents, Moreau decomposition).
//   - Composites (separable sums, scalings, translations, quadratic
//     perturbations) propagate every contract algebraically.
//   - Delicate boundary cases (0·log 0, zero norms, singular matrices) follow
//     explicit conventions instead of leaking NaN.
//
// Every functional and operator is immutable after construction and safe for
// concurrent reads.
//
//	go get github.com/Kaiyangshi-Ito/odl/functional
package odl
