package bs

import "math"

// Norm is the Bachelier normal model with a flat rate. Sigma is in price
// units, not relative.
type Norm struct {
	Sigma float64
	Intr  float64
}

func (m Norm) Price(strike, spot, texp float64, cp int) float64 {
	df := math.Exp(-m.Intr * texp)
	fwd := spot / df
	c := float64(cp)
	v := m.Sigma * math.Sqrt(texp)
	if v <= 0 {
		return df * math.Max(c*(fwd-strike), 0.0)
	}
	d := (fwd - strike) / v
	return df * (c*(fwd-strike)*stdnorm.CDF(c*d) + v*stdnorm.Prob(d))
}

func (m Norm) ImpVol(price, strike, spot, texp float64, cp int) float64 {
	// normal vol is in price units, so the bracket scales with the level
	scale := math.Max(math.Abs(spot), math.Abs(strike))
	return impVolBisect(price, impVolMin*scale, impVolMax*scale, func(sigma float64) float64 {
		return Norm{Sigma: sigma, Intr: m.Intr}.Price(strike, spot, texp, cp)
	})
}
