package mc

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// BsmMC prices lognormal SABR (beta=1) by direct simulation: the terminal
// spot is built from the correlated shift driven by the volatility path and a
// fresh lognormal residual, and the discounted payoff is averaged.
type BsmMC struct {
	par Params
	src rand.Source
}

func (m BsmMC) Price(strikes []float64, spot, texp float64, cp int) ([]float64, error) {
	if err := checkInputs(strikes, spot, texp, cp); err != nil {
		return nil, err
	}
	p := m.par
	vp := sigmaPath(texp, p, m.src)
	sigmaT := vp.terminal()
	intvar := intvarNormalized(vp)

	df := math.Exp(-p.Intr * texp)
	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: m.src}
	st := make([]float64, p.NPath)
	for j := range st {
		s := corrShift(p, sigmaT[j], vp.wT[j]) - 0.5*p.Sigma*p.Rho*texp*intvar[j]
		shift := math.Exp(p.Rho * p.Sigma * s)
		volt := p.Sigma * math.Sqrt((1.0-p.Rho*p.Rho)*intvar[j]) * math.Sqrt(texp)
		z := d.Rand()
		st[j] = shift * (spot / df) * math.Exp(volt*(z-0.5*volt))
	}
	return meanPayoff(st, strikes, df, cp), nil
}

func (m BsmMC) VolSmile(strikes []float64, spot, texp float64, cp int) ([]float64, error) {
	return volSmile(m, m.par, strikes, spot, texp, cp)
}

// NormMC prices normal SABR (beta=0) by direct simulation, with an additive
// terminal construction instead of a multiplicative one.
type NormMC struct {
	par Params
	src rand.Source
}

func (m NormMC) Price(strikes []float64, spot, texp float64, cp int) ([]float64, error) {
	if err := checkInputs(strikes, spot, texp, cp); err != nil {
		return nil, err
	}
	p := m.par
	vp := sigmaPath(texp, p, m.src)
	sigmaT := vp.terminal()
	intvar := intvarNormalized(vp)

	df := math.Exp(-p.Intr * texp)
	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: m.src}
	st := make([]float64, p.NPath)
	for j := range st {
		shift := p.Sigma * p.Rho * corrShift(p, sigmaT[j], vp.wT[j])
		volt := p.Sigma * math.Sqrt((1.0-p.Rho*p.Rho)*intvar[j]) * math.Sqrt(texp)
		st[j] = shift + spot/df + volt*d.Rand()
	}
	return meanPayoff(st, strikes, df, cp), nil
}

func (m NormMC) VolSmile(strikes []float64, spot, texp float64, cp int) ([]float64, error) {
	return volSmile(m, m.par, strikes, spot, texp, cp)
}

// meanPayoff averages the discounted vanilla payoff of every strike over the
// simulated terminal spots.
func meanPayoff(st, strikes []float64, df float64, cp int) []float64 {
	c := float64(cp)
	out := make([]float64, len(strikes))
	for i, k := range strikes {
		s := 0.0
		for _, x := range st {
			s += math.Max(c*(x-k), 0.0)
		}
		out[i] = df * s / float64(len(st))
	}
	return out
}
