package mc

import (
	"errors"
	"fmt"
	"math"

	"github.com/banachtech/sabrmc/bs"
)

// ErrBadShape is returned when strikes, spot or texp cannot form a valid
// pricing request.
var ErrBadShape = errors.New("bad input shape")

// Params holds the SABR model parameters together with the numerical knobs of
// the simulation. Values are copied into a simulator at construction; nothing
// is shared between pricing calls.
type Params struct {
	Sigma float64 // base volatility scale
	Vov   float64 // volatility of volatility
	Rho   float64 // spot-vol correlation
	Beta  float64 // elasticity, 0 (normal) or 1 (lognormal)
	Intr  float64 // flat risk-free rate
	Dt    float64 // simulation time step
	NPath int     // number of Monte Carlo paths
}

// DefaultParams returns lognormal dynamics with the default numerical
// settings.
func DefaultParams(sigma float64) Params {
	return Params{Sigma: sigma, Beta: 1.0, Dt: 0.1, NPath: 10000}
}

func (p Params) Validate() error {
	switch {
	case !(p.Sigma > 0):
		return fmt.Errorf("sigma must be positive, got %v", p.Sigma)
	case p.Vov < 0 || math.IsNaN(p.Vov):
		return fmt.Errorf("vov must be non-negative, got %v", p.Vov)
	case math.Abs(p.Rho) > 1 || math.IsNaN(p.Rho):
		return fmt.Errorf("rho must be in [-1,1], got %v", p.Rho)
	case !(p.Dt > 0):
		return fmt.Errorf("dt must be positive, got %v", p.Dt)
	case p.NPath <= 0:
		return fmt.Errorf("n_path must be positive, got %v", p.NPath)
	}
	if p.Beta != 0 && p.Beta != 1 {
		return bs.ErrUnsupportedBeta
	}
	return nil
}

func checkInputs(strikes []float64, spot, texp float64, cp int) error {
	if len(strikes) == 0 {
		return fmt.Errorf("%w: empty strike vector", ErrBadShape)
	}
	for _, k := range strikes {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("%w: non-finite strike %v", ErrBadShape, k)
		}
	}
	if math.IsNaN(spot) || math.IsInf(spot, 0) {
		return fmt.Errorf("%w: non-finite spot %v", ErrBadShape, spot)
	}
	if !(texp > 0) || math.IsInf(texp, 0) {
		return fmt.Errorf("%w: texp must be positive, got %v", ErrBadShape, texp)
	}
	if cp != 1 && cp != -1 {
		return fmt.Errorf("%w: cp must be +1 or -1, got %v", ErrBadShape, cp)
	}
	return nil
}
