package space

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Element is a point of a Space. Leaf elements own a flat float64 buffer,
// product elements own one sub-element per factor. All binary operations
// panic if the operands belong to different spaces (programmer error, same
// policy as gonum/mat shape mismatches).
type Element struct {
	space *Space
	data  []float64
	parts []*Element
}

// Space returns the space the element belongs to.
func (x *Element) Space() *Space { return x.space }

// Part returns the i-th component of a product-space element.
// Panics if the element is a leaf or i is out of range.
func (x *Element) Part(i int) *Element {
	if i < 0 || i >= len(x.parts) {
		panic(panicPartRange)
	}

	return x.parts[i]
}

// Data returns the backing buffer of a leaf element, or nil for a product
// element. The buffer is shared, not copied: writes through it mutate the
// element (gonum RawMatrix idiom, intended for in-place kernels).
func (x *Element) Data() []float64 { return x.data }

// Copy returns a deep copy.
func (x *Element) Copy() *Element {
	if x.parts == nil {
		buf := make([]float64, len(x.data))
		copy(buf, x.data)

		return &Element{space: x.space, data: buf}
	}
	parts := make([]*Element, len(x.parts))
	for i, p := range x.parts {
		parts[i] = p.Copy()
	}

	return &Element{space: x.space, parts: parts}
}

// Flatten returns a fresh flat copy of all scalar entries in leaf order.
func (x *Element) Flatten() []float64 {
	out := make([]float64, 0, x.space.Dim())

	return x.appendFlat(out)
}

// SetFlat overwrites every scalar entry from flat data in leaf order.
// All entries of the element are rewritten on success.
func (x *Element) SetFlat(data []float64) error {
	if len(data) != x.space.Dim() {
		return ErrDimension
	}
	rest := data
	x.eachLeaf(func(buf []float64) {
		copy(buf, rest[:len(buf)])
		rest = rest[len(buf):]
	})

	return nil
}

func (x *Element) appendFlat(out []float64) []float64 {
	if x.parts == nil {
		return append(out, x.data...)
	}
	for _, p := range x.parts {
		out = p.appendFlat(out)
	}

	return out
}

func (x *Element) sameSpace(y *Element) {
	if y == nil || !x.space.Equal(y.space) {
		panic(panicMismatch)
	}
}

// Inner returns the Euclidean inner product ⟨x, y⟩.
func (x *Element) Inner(y *Element) float64 {
	x.sameSpace(y)
	if x.parts == nil {
		return floats.Dot(x.data, y.data)
	}
	total := 0.0
	for i, p := range x.parts {
		total += p.Inner(y.parts[i])
	}

	return total
}

// Norm returns the Euclidean norm √⟨x, x⟩.
func (x *Element) Norm() float64 { return math.Sqrt(x.Inner(x)) }

// Dist returns the Euclidean distance ‖x − y‖.
func (x *Element) Dist(y *Element) float64 {
	x.sameSpace(y)
	if x.parts == nil {
		return floats.Distance(x.data, y.data, 2)
	}
	total := 0.0
	for i, p := range x.parts {
		d := p.Dist(y.parts[i])
		total += d * d
	}

	return math.Sqrt(total)
}

// Add returns x + y.
func (x *Element) Add(y *Element) *Element {
	return x.binary(y, func(dst, b []float64) { floats.Add(dst, b) })
}

// Sub returns x − y.
func (x *Element) Sub(y *Element) *Element {
	return x.binary(y, func(dst, b []float64) { floats.Sub(dst, b) })
}

// Mul returns the elementwise (Hadamard) product x ∘ y.
func (x *Element) Mul(y *Element) *Element {
	return x.binary(y, func(dst, b []float64) { floats.Mul(dst, b) })
}

// Div returns the elementwise quotient x / y. Division by zero follows IEEE
// semantics and produces ±Inf or NaN; callers decide how to interpret it.
func (x *Element) Div(y *Element) *Element {
	return x.binary(y, func(dst, b []float64) { floats.Div(dst, b) })
}

func (x *Element) binary(y *Element, kernel func(dst, b []float64)) *Element {
	x.sameSpace(y)
	out := x.Copy()
	out.binaryInPlace(y, kernel)

	return out
}

func (x *Element) binaryInPlace(y *Element, kernel func(dst, b []float64)) {
	if x.parts == nil {
		kernel(x.data, y.data)

		return
	}
	for i, p := range x.parts {
		p.binaryInPlace(y.parts[i], kernel)
	}
}

// Scale returns a·x.
func (x *Element) Scale(a float64) *Element {
	out := x.Copy()
	out.eachLeaf(func(data []float64) { floats.Scale(a, data) })

	return out
}

// AddConst returns x + a·1.
func (x *Element) AddConst(a float64) *Element {
	out := x.Copy()
	out.eachLeaf(func(data []float64) { floats.AddConst(a, data) })

	return out
}

// Neg returns −x.
func (x *Element) Neg() *Element { return x.Scale(-1) }

// Map returns the element obtained by applying f to every scalar entry.
func (x *Element) Map(f func(float64) float64) *Element {
	out := x.Copy()
	out.eachLeaf(func(data []float64) {
		for i, v := range data {
			data[i] = f(v)
		}
	})

	return out
}

// Map2 returns the element with entries f(x_i, y_i).
func (x *Element) Map2(y *Element, f func(a, b float64) float64) *Element {
	x.sameSpace(y)
	out := x.Copy()
	out.binaryInPlace(y, func(dst, b []float64) {
		for i := range dst {
			dst[i] = f(dst[i], b[i])
		}
	})

	return out
}

// Abs returns the elementwise absolute value.
func (x *Element) Abs() *Element { return x.Map(math.Abs) }

// Sign returns the elementwise sign (−1, 0 or +1).
func (x *Element) Sign() *Element {
	return x.Map(func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	})
}

// eachLeaf applies fn to every leaf buffer, depth first.
func (x *Element) eachLeaf(fn func(data []float64)) {
	if x.parts == nil {
		fn(x.data)

		return
	}
	for _, p := range x.parts {
		p.eachLeaf(fn)
	}
}
