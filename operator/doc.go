// Package operator defines the domain→range map abstraction shared by
// gradients, proximal operators and projections, together with a small set
// of concrete operators.
//
// The core contract is the Operator interface: a map between two spaces with
// a linearity flag and an Apply method. Optional capabilities (Adjointable,
// Invertible, SelfAdjoint, Differentiable) are separate interfaces that
// concrete operators implement when the property is actually available;
// callers discover them with type assertions.
//
// Concrete operators:
//   - Zero, Identity, Scaling, Constant — the elementary building blocks,
//   - Diagonal — block-diagonal action over a product space,
//   - Matrix — a gonum-backed dense linear map with adjoint and inverse,
//   - PointwiseNorm — per-point p-norm across the components of a power
//     space element.
//
// Scale, Sum and WithOffset combine operators algebraically; they are the
// pieces gradients of composite functionals are assembled from.
package operator
