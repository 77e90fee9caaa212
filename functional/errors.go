package functional

import "errors"

var (
	// ErrNotImplemented is returned when a requested contract (gradient,
	// proximal or conjugate) has no closed form for the functional at hand.
	ErrNotImplemented = errors.New("functional: not implemented for this functional")

	// ErrDomainMismatch is returned when an element is evaluated against a
	// functional whose domain it does not belong to, or when functionals
	// over incompatible domains are combined.
	ErrDomainMismatch = errors.New("functional: element not in functional domain")

	// ErrNotProductSpace is returned when a functional of vector fields is
	// constructed on a plain (non-product) space.
	ErrNotProductSpace = errors.New("functional: domain must be a product space")

	// ErrNotPowerSpace is returned when a pointwise functional is
	// constructed on a product space with differing factors.
	ErrNotPowerSpace = errors.New("functional: domain must be a power product space")

	// ErrPriorNotInDomain is returned when a divergence prior does not
	// belong to the functional domain.
	ErrPriorNotInDomain = errors.New("functional: prior element not in domain")

	// ErrGradientUndefined is returned when a gradient is requested at a
	// point where it does not exist (e.g. cross entropy at a boundary).
	ErrGradientUndefined = errors.New("functional: gradient undefined at this point")

	// ErrUnknownExponent is returned for NaN norm exponents.
	ErrUnknownExponent = errors.New("functional: unknown norm exponent")

	// ErrNoOperatorOrVector is returned when a quadratic form is built
	// without an operator and without a vector.
	ErrNoOperatorOrVector = errors.New("functional: quadratic form needs an operator or a vector")

	// ErrNonPositiveScale is returned for scaling a functional by a
	// non-positive constant, which would destroy convexity.
	ErrNonPositiveScale = errors.New("functional: scaling constant must be positive")

	// ErrNegativeQuadCoeff is returned for a negative quadratic
	// perturbation coefficient.
	ErrNegativeQuadCoeff = errors.New("functional: quadratic coefficient must be non-negative")

	// ErrNegativeSmoothing is returned for a negative Huber smoothing
	// parameter.
	ErrNegativeSmoothing = errors.New("functional: smoothing parameter must be non-negative")

	// ErrNonPositiveSigma is returned for a non-positive Moreau envelope
	// smoothing parameter.
	ErrNonPositiveSigma = errors.New("functional: envelope parameter must be positive")

	// ErrNonPositiveDiameter is returned for a non-positive simplex
	// diameter.
	ErrNonPositiveDiameter = errors.New("functional: simplex diameter must be positive")

	// ErrEmptySum is returned when a separable sum is built from no parts.
	ErrEmptySum = errors.New("functional: separable sum needs at least one part")

	// ErrIndexRange is returned for out-of-range component access on a
	// separable sum.
	ErrIndexRange = errors.New("functional: component index out of range")

	// ErrSVDFailed is returned when a singular value decomposition does not
	// converge.
	ErrSVDFailed = errors.New("functional: singular value decomposition failed")
)
