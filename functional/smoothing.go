package functional

import (
	"math"

	"github.com/Kaiyangshi-Ito/odl/operator"
	"github.com/Kaiyangshi-Ito/odl/prox"
	"github.com/Kaiyangshi-Ito/odl/space"
)

// Huber is the smoothed L1-type functional
//
//	F(x) = Σ_t h_γ(‖x[t]‖₂),  h_γ(m) = m²/(2γ) for m < γ, m − γ/2 otherwise,
//
// where the pointwise magnitude is the absolute value on a plain space and
// the cross-component 2-norm on a power space. With γ = 0 it degenerates to
// the (group) L1 norm; for γ > 0 the gradient is 1/γ-Lipschitz.
type Huber struct {
	attrs
	gamma float64
}

// NewHuber returns the Huber functional with smoothing gamma ≥ 0 on sp.
func NewHuber(sp *space.Space, gamma float64) (*Huber, error) {
	if gamma < 0 {
		return nil, ErrNegativeSmoothing
	}
	if sp.IsProduct() && !sp.IsPower() {
		return nil, ErrNotPowerSpace
	}
	gradLip := math.Inf(1)
	if gamma > 0 {
		gradLip = 1 / gamma
	}

	return &Huber{attrs: attrs{domain: sp, gradLip: gradLip}, gamma: gamma}, nil
}

// Gamma returns the smoothing parameter.
func (f *Huber) Gamma() float64 { return f.gamma }

// magnitudes returns the pointwise magnitude field and, for power spaces,
// the flattened components it was computed from.
func (f *Huber) magnitudes(x *space.Element) ([]float64, [][]float64) {
	if !f.domain.IsProduct() {
		flat := x.Flatten()
		mags := make([]float64, len(flat))
		for i, v := range flat {
			mags[i] = math.Abs(v)
		}

		return mags, [][]float64{flat}
	}
	m := f.domain.NumParts()
	comps := make([][]float64, m)
	for i := 0; i < m; i++ {
		comps[i] = x.Part(i).Flatten()
	}
	mags := make([]float64, f.domain.Part(0).Dim())
	for t := range mags {
		total := 0.0
		for i := 0; i < m; i++ {
			total += comps[i][t] * comps[i][t]
		}
		mags[t] = math.Sqrt(total)
	}

	return mags, comps
}

func (f *Huber) Evaluate(x *space.Element) (float64, error) {
	if err := f.checkArg(x); err != nil {
		return 0, err
	}
	mags, _ := f.magnitudes(x)
	total := 0.0
	for _, m := range mags {
		switch {
		case f.gamma == 0 || m >= f.gamma:
			total += m - f.gamma/2
		default:
			total += m * m / (2 * f.gamma)
		}
	}

	return total, nil
}

// Gradient is x/γ where the magnitude stays below γ and x/‖x‖ elsewhere.
func (f *Huber) Gradient() (operator.Operator, error) {
	gamma := f.gamma

	return newMapOp(f.domain, func(x *space.Element) (*space.Element, error) {
		mags, comps := f.magnitudes(x)
		factors := make([]float64, len(mags))
		for t, m := range mags {
			switch {
			case m >= gamma && m > 0:
				factors[t] = 1 / m
			case gamma > 0:
				factors[t] = 1 / gamma
			}
		}
		flat := make([]float64, 0, f.domain.Dim())
		for i := range comps {
			for t, v := range comps[i] {
				flat = append(flat, v*factors[t])
			}
		}

		return f.domain.Element(flat...)
	}), nil
}

func (f *Huber) Proximal() (prox.Factory, error) {
	return prox.Huber(f.domain, f.gamma), nil
}

// ConvexConj is the conjugate of the underlying (group) L1 norm plus a
// strongly convex quadratic with coefficient γ/2.
func (f *Huber) ConvexConj() (Functional, error) {
	var norm Functional
	if f.domain.IsProduct() {
		group, err := NewGroupL1Norm(f.domain, 2)
		if err != nil {
			return nil, err
		}
		norm = group
	} else {
		norm = NewL1Norm(f.domain)
	}
	conj, err := norm.ConvexConj()
	if err != nil {
		return nil, err
	}

	return NewQuadraticPerturb(conj, f.gamma/2, nil, 0)
}

// MoreauEnvelope is the smoothed version of a functional,
//
//	F_σ(x) = inf_y ( F(y) + ‖x − y‖²/(2σ) ),
//
// exposed through its gradient (Id − prox_{σF})/σ. Pointwise evaluation has
// no closed form here and is intentionally unsupported.
type MoreauEnvelope struct {
	attrs
	f     Functional
	sigma float64
}

// NewMoreauEnvelope returns the Moreau envelope of f with smoothing
// parameter sigma > 0.
func NewMoreauEnvelope(f Functional, sigma float64) (*MoreauEnvelope, error) {
	if sigma <= 0 {
		return nil, ErrNonPositiveSigma
	}

	return &MoreauEnvelope{
		attrs: attrs{domain: f.Domain(), gradLip: 1 / sigma},
		f:     f,
		sigma: sigma,
	}, nil
}

// Functional returns the smoothed functional.
func (e *MoreauEnvelope) Functional() Functional { return e.f }

// Sigma returns the smoothing parameter.
func (e *MoreauEnvelope) Sigma() float64 { return e.sigma }

func (e *MoreauEnvelope) Evaluate(x *space.Element) (float64, error) {
	if err := e.checkArg(x); err != nil {
		return 0, err
	}

	return 0, ErrNotImplemented
}

// Gradient is (x − prox_{σF}(x))/σ.
func (e *MoreauEnvelope) Gradient() (operator.Operator, error) {
	factory, err := e.f.Proximal()
	if err != nil {
		return nil, err
	}
	p, err := factory(e.sigma)
	if err != nil {
		return nil, err
	}
	sig := e.sigma

	return newMapOp(e.domain, func(x *space.Element) (*space.Element, error) {
		y, err := p.Apply(x)
		if err != nil {
			return nil, err
		}

		return x.Sub(y).Scale(1 / sig), nil
	}), nil
}

func (e *MoreauEnvelope) Proximal() (prox.Factory, error) { return nil, ErrNotImplemented }

func (e *MoreauEnvelope) ConvexConj() (Functional, error) { return nil, ErrNotImplemented }
