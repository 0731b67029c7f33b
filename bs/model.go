// Package bs implements the closed-form vanilla option models used as base
// distributions by the Monte Carlo simulators: the Black-Scholes lognormal
// model and the Bachelier normal model.
package bs

import (
	"errors"
	"math"
)

// ErrUnsupportedBeta is returned for beta values outside {0, 1}.
var ErrUnsupportedBeta = errors.New("0<beta<1 not supported")

// Model prices a vanilla option under a single-volatility closed-form model
// and inverts a price back to the implied volatility. cp is +1 for calls and
// -1 for puts.
type Model interface {
	Price(strike, spot, texp float64, cp int) float64
	ImpVol(price, strike, spot, texp float64, cp int) float64
}

// FromBeta selects the base model for a SABR elasticity: beta=0 is the normal
// model, beta=1 the lognormal model.
func FromBeta(beta, sigma, intr float64) (Model, error) {
	switch beta {
	case 0:
		return Norm{Sigma: sigma, Intr: intr}, nil
	case 1:
		return Bsm{Sigma: sigma, Intr: intr}, nil
	}
	return nil, ErrUnsupportedBeta
}

const (
	impVolMin  = 1e-6
	impVolMax  = 5.0
	impVolTol  = 1e-9
	impVolIter = 100
)

// impVolBisect inverts a price through a model price function monotone in
// volatility on the bracket [lo, hi]. Prices outside the attainable bracket
// come back as NaN.
func impVolBisect(price, lo, hi float64, priceAt func(sigma float64) float64) float64 {
	if price < priceAt(lo)-impVolTol || price > priceAt(hi)+impVolTol {
		return math.NaN()
	}
	for i := 0; i < impVolIter; i++ {
		mid := 0.5 * (lo + hi)
		p := priceAt(mid)
		if math.Abs(p-price) < impVolTol {
			return mid
		}
		if p < price {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
