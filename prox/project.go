package prox

import (
	"math"
	"sort"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// Box returns the proximal factory of the box indicator: coordinatewise
// clamping to [lower, upper]. A nil bound means unbounded on that side.
func Box(sp *space.Space, lower, upper *float64) Factory {
	lo, hi := math.Inf(-1), math.Inf(1)
	if lower != nil {
		lo = *lower
	}
	if upper != nil {
		hi = *upper
	}

	return func(sigma ...float64) (operator.Operator, error) {
		if _, err := scalarStep(sigma); err != nil {
			return nil, err
		}

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			return x.Map(func(v float64) float64 {
				return math.Min(math.Max(v, lo), hi)
			}), nil
		}), nil
	}
}

// ConstFunc returns the proximal factory of a constant functional, which is
// the identity map for every step size.
func ConstFunc(sp *space.Space) Factory {
	return func(sigma ...float64) (operator.Operator, error) {
		if _, err := scalarStep(sigma); err != nil {
			return nil, err
		}

		return operator.NewIdentity(sp), nil
	}
}

// ProjectSimplex overwrites out with the Euclidean projection of x onto the
// simplex {y ≥ 0, Σy = diameter}, using the sort-and-threshold algorithm of
// Duchi et al. (2008): find the threshold τ with Σ max(x_i − τ, 0) equal to
// the diameter and set out_i = max(x_i − τ, 0). Every entry of out is
// rewritten; out must not alias an element still being read elsewhere.
func ProjectSimplex(x *space.Element, diameter float64, out *space.Element) error {
	flat := x.Flatten()
	tau := simplexThreshold(flat, diameter)
	for i, v := range flat {
		flat[i] = math.Max(v-tau, 0)
	}

	return out.SetFlat(flat)
}

// simplexThreshold returns τ such that Σ max(v_i − τ, 0) = diameter.
func simplexThreshold(v []float64, diameter float64) float64 {
	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	cum := 0.0
	tau := 0.0
	for k, s := range sorted {
		cum += s
		t := (cum - diameter) / float64(k+1)
		if s-t > 0 {
			tau = t
		}
	}

	return tau
}

// ProjectL1Ball returns the Euclidean projection of x onto the L1 ball of
// the given radius. Points already inside are returned unchanged (copied);
// outside points are projected by reusing the simplex threshold on |x| and
// restoring signs.
func ProjectL1Ball(x *space.Element, radius float64) (*space.Element, error) {
	flat := x.Flatten()
	l1 := 0.0
	for _, v := range flat {
		l1 += math.Abs(v)
	}
	if l1 <= radius {
		return x.Copy(), nil
	}

	abs := make([]float64, len(flat))
	for i, v := range flat {
		abs[i] = math.Abs(v)
	}
	tau := simplexThreshold(abs, radius)
	for i, v := range flat {
		m := math.Max(math.Abs(v)-tau, 0)
		if v < 0 {
			m = -m
		}
		flat[i] = m
	}

	return x.Space().Element(flat...)
}

// ProjectSumConstraint overwrites out with the orthogonal projection of x
// onto the hyperplane {Σy = sumValue}: a uniform shift of every entry.
// Every entry of out is rewritten.
func ProjectSumConstraint(x *space.Element, sumValue float64, out *space.Element) error {
	n := float64(x.Space().Dim())
	offset := (sumValue - x.Sum()) / n
	flat := x.Flatten()
	for i := range flat {
		flat[i] += offset
	}

	return out.SetFlat(flat)
}
