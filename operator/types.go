package operator

import (
	"errors"

	"github.com/Kaiyangshi-Ito/odl/space"
)

// Operator is a map between two vector spaces. Implementations are immutable
// after construction and safe for concurrent use.
type Operator interface {
	// Domain is the space of valid inputs.
	Domain() *space.Space
	// Range is the space the outputs live in.
	Range() *space.Space
	// IsLinear reports whether the map is linear.
	IsLinear() bool
	// Apply evaluates the operator at x. It returns ErrDomainMismatch if x
	// does not belong to the domain.
	Apply(x *space.Element) (*space.Element, error)
}

// Adjointable is implemented by linear operators that expose their adjoint.
type Adjointable interface {
	Adjoint() Operator
}

// Invertible is implemented by operators that expose an inverse map.
type Invertible interface {
	Inverse() (Operator, error)
}

// SelfAdjoint is implemented by operators that know whether they equal their
// own adjoint.
type SelfAdjoint interface {
	IsSelfAdjoint() bool
}

// Differentiable is implemented by operators that expose a derivative
// (a linear operator) at a point.
type Differentiable interface {
	Derivative(x *space.Element) (Operator, error)
}

var (
	// ErrDomainMismatch is returned when an element is applied to an operator
	// whose domain it does not belong to, or when operators over incompatible
	// spaces are combined.
	ErrDomainMismatch = errors.New("operator: element not in operator domain")

	// ErrNotInvertible is returned when an inverse is requested from an
	// operator that has none (e.g. scaling by zero).
	ErrNotInvertible = errors.New("operator: operator is not invertible")

	// ErrSingular is returned when a matrix inverse fails numerically.
	ErrSingular = errors.New("operator: singular matrix")

	// ErrNotPowerSpace is returned when an operator requiring a power product
	// space is constructed on something else.
	ErrNotPowerSpace = errors.New("operator: space must be a power product space")

	// ErrLeafSpaceRequired is returned when a matrix operator is used with a
	// product space instead of a plain Rⁿ.
	ErrLeafSpaceRequired = errors.New("operator: matrix operators require a plain R^n space")

	// ErrEmptyDiagonal is returned when a block-diagonal operator is built
	// from no parts.
	ErrEmptyDiagonal = errors.New("operator: diagonal operator needs at least one part")
)

// checkDomain validates that x belongs to the domain of op.
func checkDomain(op Operator, x *space.Element) error {
	if !op.Domain().Contains(x) {
		return ErrDomainMismatch
	}

	return nil
}
