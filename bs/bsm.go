package bs

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdnorm = distuv.Normal{Mu: 0.0, Sigma: 1.0}

// Bsm is the Black-Scholes lognormal model with a flat rate.
type Bsm struct {
	Sigma float64
	Intr  float64
}

func (m Bsm) Price(strike, spot, texp float64, cp int) float64 {
	df := math.Exp(-m.Intr * texp)
	fwd := spot / df
	c := float64(cp)
	v := m.Sigma * math.Sqrt(texp)
	if v <= 0 {
		return df * math.Max(c*(fwd-strike), 0.0)
	}
	d1 := (math.Log(fwd/strike) + 0.5*v*v) / v
	d2 := d1 - v
	return df * c * (fwd*stdnorm.CDF(c*d1) - strike*stdnorm.CDF(c*d2))
}

func (m Bsm) ImpVol(price, strike, spot, texp float64, cp int) float64 {
	return impVolBisect(price, impVolMin, impVolMax, func(sigma float64) float64 {
		return Bsm{Sigma: sigma, Intr: m.Intr}.Price(strike, spot, texp, cp)
	})
}
