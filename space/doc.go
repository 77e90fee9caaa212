// Package space provides the vector spaces that functionals are defined on,
// and the elements that live in them.
//
// A Space is either a Euclidean leaf Rⁿ or a finite product of spaces. A
// product whose factors are all equal is a power space; powers of powers
// describe matrix-valued data (one small matrix per spatial point). Elements
// mirror the space tree: leaves carry a flat []float64 buffer, product
// elements carry one sub-element per factor.
//
// Supported operations:
//   - inner products, norms and distances,
//   - elementwise arithmetic (Add, Sub, Mul, Div, Scale, AddConst),
//   - elementwise maps (Map, Map2, Abs, Sign),
//   - reductions (Sum, Max, Min, AbsMax, AbsMin, NonzeroCount, AllFinite),
//   - construction of special elements (Zero, One, Const, Element).
//
// Numeric policy follows gonum/mat: combining elements of mismatched spaces
// is a programmer error and panics with a stable message. Data-dependent
// conditions (non-finite values, zero norms) never panic; they are handled by
// the callers' explicit conventions.
//
// Spaces and elements are immutable in structure after construction. Leaf
// buffers are exposed through Data for in-place kernels; callers that share
// elements across goroutines must not write through Data concurrently.
package space
