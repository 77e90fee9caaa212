package space

import (
	"fmt"
	"strings"
)

// Space is a finite-dimensional real vector space: either a Euclidean leaf
// Rⁿ or a product of factor spaces. Spaces are immutable; the same *Space
// may be shared by any number of elements and functionals.
type Space struct {
	n     int      // leaf dimension; 0 for products
	parts []*Space // factor spaces; nil for leaves
}

// Rn returns the Euclidean space Rⁿ. Panics if n is not positive.
func Rn(n int) *Space {
	if n <= 0 {
		panic(panicBadDim)
	}

	return &Space{n: n}
}

// Product returns the product space of the given factors.
// Panics if no factor is given or any factor is nil.
func Product(parts ...*Space) *Space {
	if len(parts) == 0 {
		panic(panicEmptyProduct)
	}
	for _, p := range parts {
		if p == nil {
			panic(panicNilFactor)
		}
	}
	ps := make([]*Space, len(parts))
	copy(ps, parts)

	return &Space{parts: ps}
}

// Power returns the k-fold product of base with itself.
// Panics if base is nil or k is not positive.
func Power(base *Space, k int) *Space {
	if base == nil {
		panic(panicNilFactor)
	}
	if k <= 0 {
		panic(panicBadPower)
	}
	ps := make([]*Space, k)
	for i := range ps {
		ps[i] = base
	}

	return &Space{parts: ps}
}

// IsProduct reports whether the space is a product of factor spaces.
func (s *Space) IsProduct() bool { return s.parts != nil }

// IsPower reports whether the space is a product of identical factors.
func (s *Space) IsPower() bool {
	if !s.IsProduct() {
		return false
	}
	for _, p := range s.parts[1:] {
		if !p.Equal(s.parts[0]) {
			return false
		}
	}

	return true
}

// NumParts returns the number of factors of a product space, or 0 for a leaf.
func (s *Space) NumParts() int { return len(s.parts) }

// Part returns the i-th factor of a product space.
// Panics if the space is a leaf or i is out of range.
func (s *Space) Part(i int) *Space {
	if i < 0 || i >= len(s.parts) {
		panic(panicPartRange)
	}

	return s.parts[i]
}

// Dim returns the total number of scalar degrees of freedom.
func (s *Space) Dim() int {
	if !s.IsProduct() {
		return s.n
	}
	total := 0
	for _, p := range s.parts {
		total += p.Dim()
	}

	return total
}

// Equal reports structural equality of two spaces.
func (s *Space) Equal(o *Space) bool {
	if s == o {
		return true
	}
	if o == nil || s.IsProduct() != o.IsProduct() {
		return false
	}
	if !s.IsProduct() {
		return s.n == o.n
	}
	if len(s.parts) != len(o.parts) {
		return false
	}
	for i, p := range s.parts {
		if !p.Equal(o.parts[i]) {
			return false
		}
	}

	return true
}

// Contains reports whether x is an element of this space.
func (s *Space) Contains(x *Element) bool {
	return x != nil && x.space.Equal(s)
}

// Zero returns the additive identity element.
func (s *Space) Zero() *Element { return s.Const(0) }

// One returns the all-ones element.
func (s *Space) One() *Element { return s.Const(1) }

// Const returns the element with every scalar entry equal to c.
func (s *Space) Const(c float64) *Element {
	if !s.IsProduct() {
		data := make([]float64, s.n)
		if c != 0 {
			for i := range data {
				data[i] = c
			}
		}

		return &Element{space: s, data: data}
	}
	parts := make([]*Element, len(s.parts))
	for i, p := range s.parts {
		parts[i] = p.Const(c)
	}

	return &Element{space: s, parts: parts}
}

// Element builds an element from flat data laid out in leaf order.
// The data length must equal Dim.
func (s *Space) Element(data ...float64) (*Element, error) {
	if len(data) != s.Dim() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimension, len(data), s.Dim())
	}
	el, _ := s.fill(data)

	return el, nil
}

// fill consumes a prefix of data and returns the rest.
func (s *Space) fill(data []float64) (*Element, []float64) {
	if !s.IsProduct() {
		buf := make([]float64, s.n)
		copy(buf, data[:s.n])

		return &Element{space: s, data: buf}, data[s.n:]
	}
	parts := make([]*Element, len(s.parts))
	rest := data
	for i, p := range s.parts {
		parts[i], rest = p.fill(rest)
	}

	return &Element{space: s, parts: parts}, rest
}

// String returns a compact notation such as "R^3", "(R^3)^2" or "R^2 x R^3".
func (s *Space) String() string {
	if !s.IsProduct() {
		return fmt.Sprintf("R^%d", s.n)
	}
	if s.IsPower() {
		return fmt.Sprintf("(%s)^%d", s.parts[0], len(s.parts))
	}
	names := make([]string, len(s.parts))
	for i, p := range s.parts {
		names[i] = p.String()
	}

	return strings.Join(names, " x ")
}
