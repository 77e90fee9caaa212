package prox

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// ConvexConjKL returns the proximal factory of the convex conjugate of the
// Kullback-Leibler divergence with prior g (nil means the all-ones prior):
//
//	prox_{σF*}(x)_i = (x_i + 1 − √((x_i − 1)² + 4σ·g_i)) / 2.
func ConvexConjKL(sp *space.Space, g *space.Element) Factory {
	prior := g
	if prior == nil {
		prior = sp.One()
	}

	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarStep(sigma)
		if err != nil {
			return nil, err
		}
		gflat := prior.Flatten()

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			flat := x.Flatten()
			for i, v := range flat {
				d := v - 1
				flat[i] = (v + 1 - math.Sqrt(d*d+4*sig*gflat[i])) / 2
			}

			return sp.Element(flat...)
		}), nil
	}
}

// ConvexConjKLCrossEntropy returns the proximal factory of the convex
// conjugate of the Kullback-Leibler cross entropy with prior g (nil means
// the all-ones prior):
//
//	prox_{σF*}(x)_i = x_i − W(σ·g_i·e^{x_i}),
//
// where W is the principal branch of the Lambert W function.
func ConvexConjKLCrossEntropy(sp *space.Space, g *space.Element) Factory {
	prior := g
	if prior == nil {
		prior = sp.One()
	}

	return func(sigma ...float64) (operator.Operator, error) {
		sig, err := scalarStep(sigma)
		if err != nil {
			return nil, err
		}
		gflat := prior.Flatten()

		return newOp(sp, func(x *space.Element) (*space.Element, error) {
			flat := x.Flatten()
			for i, v := range flat {
				flat[i] = v - lambertW(sig*gflat[i]*math.Exp(v))
			}

			return sp.Element(flat...)
		}), nil
	}
}

// lambertW evaluates the principal branch W₀ for non-negative arguments
// (the only case the KL proximals produce) by Halley iteration. The initial
// guess is z/(1+z) for small z and log z − log log z for large z.
func lambertW(z float64) float64 {
	if z == 0 {
		return 0
	}
	if math.IsInf(z, 1) {
		return math.Inf(1)
	}

	var w float64
	if z < 3 {
		w = z / (1 + z)
	} else {
		lz := math.Log(z)
		w = lz - math.Log(lz)
	}

	for iter := 0; iter < 64; iter++ {
		ew := math.Exp(w)
		f := w*ew - z
		// Halley step: f' = e^w (w+1), f'' = e^w (w+2).
		denom := ew*(w+1) - (w+2)*f/(2*w+2)
		step := f / denom
		w -= step
		if math.Abs(step) <= 1e-15*(1+math.Abs(w)) {
			break
		}
	}

	return w
}
