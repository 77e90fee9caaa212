package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// xlogy returns a·log(b) with the convention 0·log(anything) = 0, which keeps
// divergence sums free of spurious NaNs at zero entries.
func xlogy(a, b float64) float64 {
	if a == 0 {
		return 0
	}

	return a * math.Log(b)
}

// extReal collapses any non-finite partial sum to +Inf, the extended-real
// value of a point outside the effective domain.
func extReal(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.Inf(1)
	}

	return v
}

// checkPrior validates an optional divergence prior against the domain and
// returns a private copy (nil stays nil and means the all-ones prior).
func checkPrior(sp *space.Space, g *space.Element) (*space.Element, error) {
	if g == nil {
		return nil, nil
	}
	if !sp.Contains(g) {
		return nil, ErrPriorNotInDomain
	}

	return g.Copy(), nil
}

// KullbackLeibler is the divergence
//
//	F(x) = Σ (x_i − g_i + g_i·log(g_i/x_i)),
//
// with prior g (nil means all ones) and value +Inf wherever any entry makes
// the sum non-finite.
type KullbackLeibler struct {
	attrs
	prior *space.Element
}

// NewKullbackLeibler returns the KL divergence on sp with prior g.
func NewKullbackLeibler(sp *space.Space, g *space.Element) (*KullbackLeibler, error) {
	prior, err := checkPrior(sp, g)
	if err != nil {
		return nil, err
	}

	return &KullbackLeibler{attrs: attrs{domain: sp, gradLip: unknownLip()}, prior: prior}, nil
}

// Prior returns a copy of the prior, or nil for the all-ones default.
func (f *KullbackLeibler) Prior() *space.Element {
	if f.prior == nil {
		return nil
	}

	return f.prior.Copy()
}

func (f *KullbackLeibler) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	total := 0.0
	if f.prior == nil {
		for _, v := range x.Flatten() {
			total += v - 1 - math.Log(v)
		}
	} else {
		gflat := f.prior.Flatten()
		for i, v := range x.Flatten() {
			total += v - gflat[i] + xlogy(gflat[i], gflat[i]/v)
		}
	}

	return extReal(total), nil
}

// Gradient is 1 − g/x. Entries with x_i = 0 produce infinities which are
// propagated as numbers, matching the pointwise formula.
func (f *KullbackLeibler) Gradient() (operator.Operator, error) {
	prior := f.prior

	return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
		if prior == nil {
			return x.Map(func(v float64) float64 { return 1 - 1/v }), nil
		}

		return x.Map2(prior, func(v, g float64) float64 { return 1 - g/v }), nil
	}), nil
}

func (f *KullbackLeibler) Proximal() (prox.Factory, error) {
	return prox.ConvexConj(prox.ConvexConjKL(f.domain, f.prior)), nil
}

func (f *KullbackLeibler) ConvexConj() (Functional, error) {
	return NewKullbackLeiblerConvexConj(f.domain, f.prior)
}

// KullbackLeiblerConvexConj is the Fenchel conjugate of the KL divergence,
//
//	F*(y) = Σ −g_i·log(1 − y_i),
//
// finite only where every entry stays below one.
type KullbackLeiblerConvexConj struct {
	attrs
	prior *space.Element
}

// NewKullbackLeiblerConvexConj returns the conjugate KL functional on sp
// with prior g.
func NewKullbackLeiblerConvexConj(sp *space.Space, g *space.Element) (*KullbackLeiblerConvexConj, error) {
	prior, err := checkPrior(sp, g)
	if err != nil {
		return nil, err
	}

	return &KullbackLeiblerConvexConj{attrs: attrs{domain: sp, gradLip: unknownLip()}, prior: prior}, nil
}

// Prior returns a copy of the prior, or nil for the all-ones default.
func (f *KullbackLeiblerConvexConj) Prior() *space.Element {
	if f.prior == nil {
		return nil
	}

	return f.prior.Copy()
}

func (f *KullbackLeiblerConvexConj) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	total := 0.0
	if f.prior == nil {
		for _, v := range x.Flatten() {
			total += -math.Log(1 - v)
		}
	} else {
		gflat := f.prior.Flatten()
		for i, v := range x.Flatten() {
			total += -xlogy(gflat[i], 1-v)
		}
	}

	return extReal(total), nil
}

// Gradient is g/(1 − x).
func (f *KullbackLeiblerConvexConj) Gradient() (operator.Operator, error) {
	prior := f.prior

	return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
		if prior == nil {
			return x.Map(func(v float64) float64 { return 1 / (1 - v) }), nil
		}

		return x.Map2(prior, func(v, g float64) float64 { return g / (1 - v) }), nil
	}), nil
}

func (f *KullbackLeiblerConvexConj) Proximal() (prox.Factory, error) {
	return prox.ConvexConjKL(f.domain, f.prior), nil
}

func (f *KullbackLeiblerConvexConj) ConvexConj() (Functional, error) {
	return NewKullbackLeibler(f.domain, f.prior)
}

// KullbackLeiblerCrossEntropy is the divergence with the roles of argument
// and prior swapped,
//
//	F(x) = Σ (g_i − x_i + x_i·log(x_i/g_i)).
type KullbackLeiblerCrossEntropy struct {
	attrs
	prior *space.Element
}

// NewKullbackLeiblerCrossEntropy returns the KL cross entropy on sp with
// prior g (nil means all ones).
func NewKullbackLeiblerCrossEntropy(sp *space.Space, g *space.Element) (*KullbackLeiblerCrossEntropy, error) {
	prior, err := checkPrior(sp, g)
	if err != nil {
		return nil, err
	}

	return &KullbackLeiblerCrossEntropy{attrs: attrs{domain: sp, gradLip: unknownLip()}, prior: prior}, nil
}

// Prior returns a copy of the prior, or nil for the all-ones default.
func (f *KullbackLeiblerCrossEntropy) Prior() *space.Element {
	if f.prior == nil {
		return nil
	}

	return f.prior.Copy()
}

func (f *KullbackLeiblerCrossEntropy) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	total := 0.0
	if f.prior == nil {
		for _, v := range x.Flatten() {
			total += 1 - v + xlogy(v, v)
		}
	} else {
		gflat := f.prior.Flatten()
		for i, v := range x.Flatten() {
			total += gflat[i] - v + xlogy(v, v/gflat[i])
		}
	}

	return extReal(total), nil
}

// Gradient is log(x/g). Unlike the plain KL gradient it refuses points with
// non-finite entries and returns ErrGradientUndefined, since the logarithm
// blows up on the boundary of the domain.
func (f *KullbackLeiblerCrossEntropy) Gradient() (operator.Operator, error) {
	prior := f.prior

	return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
		var out *space.Element
		if prior == nil {
			out = x.Map(math.Log)
		} else {
			out = x.Map2(prior, func(v, g float64) float64 { return math.Log(v / g) })
		}
		if !out.AllFinite() {
			return nil, ErrGradientUndefined
		}

		return out, nil
	}), nil
}

func (f *KullbackLeiblerCrossEntropy) Proximal() (prox.Factory, error) {
	return prox.ConvexConj(prox.ConvexConjKLCrossEntropy(f.domain, f.prior)), nil
}

func (f *KullbackLeiblerCrossEntropy) ConvexConj() (Functional, error) {
	return NewKullbackLeiblerCrossEntropyConvexConj(f.domain, f.prior)
}

// KullbackLeiblerCrossEntropyConvexConj is the conjugate of the KL cross
// entropy,
//
//	F*(y) = Σ g_i·(e^{y_i} − 1),
//
// finite on the whole space.
type KullbackLeiblerCrossEntropyConvexConj struct {
	attrs
	prior *space.Element
}

// NewKullbackLeiblerCrossEntropyConvexConj returns the conjugate cross
// entropy on sp with prior g.
func NewKullbackLeiblerCrossEntropyConvexConj(sp *space.Space, g *space.Element) (*KullbackLeiblerCrossEntropyConvexConj, error) {
	prior, err := checkPrior(sp, g)
	if err != nil {
		return nil, err
	}

	return &KullbackLeiblerCrossEntropyConvexConj{attrs: attrs{domain: sp, gradLip: unknownLip()}, prior: prior}, nil
}

// Prior returns a copy of the prior, or nil for the all-ones default.
func (f *KullbackLeiblerCrossEntropyConvexConj) Prior() *space.Element {
	if f.prior == nil {
		return nil
	}

	return f.prior.Copy()
}

func (f *KullbackLeiblerCrossEntropyConvexConj) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	total := 0.0
	if f.prior == nil {
		for _, v := range x.Flatten() {
			total += math.Exp(v) - 1
		}
	} else {
		gflat := f.prior.Flatten()
		for i, v := range x.Flatten() {
			total += gflat[i] * (math.Exp(v) - 1)
		}
	}

	return total, nil
}

// Gradient is g·e^x, defined everywhere.
func (f *KullbackLeiblerCrossEntropyConvexConj) Gradient() (operator.Operator, error) {
	prior := f.prior

	return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
		if prior == nil {
			return x.Map(math.Exp), nil
		}

		return x.Map2(prior, func(v, g float64) float64 { return g * math.Exp(v) }), nil
	}), nil
}

func (f *KullbackLeiblerCrossEntropyConvexConj) Proximal() (prox.Factory, error) {
	return prox.ConvexConjKLCrossEntropy(f.domain, f.prior), nil
}

func (f *KullbackLeiblerCrossEntropyConvexConj) ConvexConj() (Functional, error) {
	return NewKullbackLeiblerCrossEntropy(f.domain, f.prior)
}
