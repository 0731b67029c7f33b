package mc

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// volPath holds the simulated volatility multipliers on the time grid and the
// terminal level of the driving Brownian motion per path. The multiplier
// starts at 1 and stays strictly positive.
type volPath struct {
	sigma *mat.Dense // (nDt+1) x nPath
	wT    []float64
	tobs  []float64 // grid times, tobs[nDt] == texp
}

// sigmaPath simulates the multiplier exp(vov*(W_t - vov/2*t)) on a grid of
// ceil(texp/dt) equal steps ending exactly at texp. The drift correction uses
// wall-clock grid time, so the multiplier is a martingale for any step count.
func sigmaPath(texp float64, p Params, src rand.Source) volPath {
	nDt := int(math.Ceil(texp / p.Dt))
	if nDt < 1 {
		nDt = 1
	}
	dt := texp / float64(nDt)
	tobs := make([]float64, nDt+1)
	for k := 1; k <= nDt; k++ {
		tobs[k] = float64(k) / float64(nDt) * texp
	}

	d := distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: src}
	sqdt := math.Sqrt(dt)
	sigma := mat.NewDense(nDt+1, p.NPath, nil)
	wT := make([]float64, p.NPath)
	for j := 0; j < p.NPath; j++ {
		sigma.Set(0, j, 1.0)
		w := 0.0
		for k := 1; k <= nDt; k++ {
			w += sqdt * d.Rand()
			sigma.Set(k, j, math.Exp(p.Vov*(w-0.5*p.Vov*tobs[k])))
		}
		wT[j] = w
	}
	return volPath{sigma: sigma, wT: wT, tobs: tobs}
}

// intvarNormalized applies trapezoid weights to the squared multipliers,
// estimating int_0^T sigma_t^2 dt / (sigma_0^2 T) per path. A constant path
// of ones gives exactly 1.
func intvarNormalized(vp volPath) []float64 {
	n, nPath := vp.sigma.Dims()
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0
	}
	w[0], w[n-1] = 0.5, 0.5
	floats.Scale(1.0/floats.Sum(w), w)

	intvar := make([]float64, nPath)
	for j := 0; j < nPath; j++ {
		s := 0.0
		for i := 0; i < n; i++ {
			v := vp.sigma.At(i, j)
			s += w[i] * v * v
		}
		intvar[j] = s
	}
	return intvar
}

// terminal returns the last row of the multiplier grid.
func (vp volPath) terminal() []float64 {
	n, _ := vp.sigma.Dims()
	return mat.Row(nil, n-1, vp.sigma)
}

// corrShift is (sigma_T-1)/vov, the correlated Brownian component of the
// terminal spot, continued to its exact limit W_T at vov=0.
func corrShift(p Params, sigmaT, wT float64) float64 {
	if p.Vov == 0 {
		return wT
	}
	return (sigmaT - 1.0) / p.Vov
}
