package space

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of all scalar entries.
func (x *Element) Sum() float64 {
	total := 0.0
	x.eachLeaf(func(data []float64) { total += floats.Sum(data) })

	return total
}

// Max returns the largest scalar entry.
func (x *Element) Max() float64 {
	max := math.Inf(-1)
	x.eachLeaf(func(data []float64) {
		if m := floats.Max(data); m > max {
			max = m
		}
	})

	return max
}

// Min returns the smallest scalar entry.
func (x *Element) Min() float64 {
	min := math.Inf(1)
	x.eachLeaf(func(data []float64) {
		if m := floats.Min(data); m < min {
			min = m
		}
	})

	return min
}

// AbsMax returns the largest absolute scalar entry (the ∞-norm).
func (x *Element) AbsMax() float64 {
	max := 0.0
	x.eachLeaf(func(data []float64) {
		for _, v := range data {
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	})

	return max
}

// AbsMin returns the smallest absolute scalar entry.
func (x *Element) AbsMin() float64 {
	min := math.Inf(1)
	x.eachLeaf(func(data []float64) {
		for _, v := range data {
			if a := math.Abs(v); a < min {
				min = a
			}
		}
	})

	return min
}

// NonzeroCount returns the number of nonzero scalar entries.
func (x *Element) NonzeroCount() int {
	count := 0
	x.eachLeaf(func(data []float64) {
		for _, v := range data {
			if v != 0 {
				count++
			}
		}
	})

	return count
}

// AllFinite reports whether every scalar entry is finite (no NaN, no ±Inf).
func (x *Element) AllFinite() bool {
	finite := true
	x.eachLeaf(func(data []float64) {
		for _, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				finite = false

				return
			}
		}
	})

	return finite
}
