package space

import "errors"

// ErrDimension is returned when flat data of the wrong length is used to
// build an element.
var ErrDimension = errors.New("space: flat data length does not match space dimension")

// Panic messages for programmer errors (invalid construction parameters and
// mismatched-space arithmetic). Kept as constants so tests can assert them.
const (
	panicBadDim       = "space: dimension must be positive"
	panicEmptyProduct = "space: product needs at least one factor"
	panicNilFactor    = "space: nil factor in product"
	panicBadPower     = "space: power exponent must be positive"
	panicMismatch     = "space: mismatched spaces"
	panicPartRange    = "space: part index out of range"
)
