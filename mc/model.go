// Package mc prices vanilla options under the SABR stochastic volatility
// model by Monte Carlo simulation. Four simulators are provided: direct
// simulation of the terminal spot and conditional Monte Carlo, each for
// lognormal (beta=1) and normal (beta=0) base dynamics.
package mc

import (
	"time"

	"github.com/banachtech/sabrmc/bs"
	"golang.org/x/exp/rand"
)

// Model prices vanilla options under SABR by Monte Carlo. All strikes are
// priced against the same simulated path set. A Model is not safe for
// concurrent use; build one per goroutine or synchronize externally.
type Model interface {
	// Price returns the discounted expected payoff per strike. cp is +1 for
	// calls and -1 for puts.
	Price(strikes []float64, spot, texp float64, cp int) ([]float64, error)
	// VolSmile computes prices and inverts them through the base model's
	// implied volatility solver.
	VolSmile(strikes []float64, spot, texp float64, cp int) ([]float64, error)
}

// New builds the simulator for p: the distribution kind follows p.Beta and
// cond selects conditional Monte Carlo. src seeds the generator for
// reproducible runs; nil falls back to a time-based seed.
func New(p Params, cond bool, src rand.Source) (Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	switch {
	case p.Beta == 1 && !cond:
		return BsmMC{par: p, src: src}, nil
	case p.Beta == 1 && cond:
		return BsmCondMC{par: p, src: src}, nil
	case !cond:
		return NormMC{par: p, src: src}, nil
	default:
		return NormCondMC{par: p, src: src}, nil
	}
}

func volSmile(m Model, p Params, strikes []float64, spot, texp float64, cp int) ([]float64, error) {
	prices, err := m.Price(strikes, spot, texp, cp)
	if err != nil {
		return nil, err
	}
	base, err := bs.FromBeta(p.Beta, p.Sigma, p.Intr)
	if err != nil {
		return nil, err
	}
	iv := make([]float64, len(prices))
	for i := range prices {
		iv[i] = base.ImpVol(prices[i], strikes[i], spot, texp, cp)
	}
	return iv, nil
}
