package mc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func TestSigmaPathGrid(t *testing.T) {
	p := DefaultParams(0.2)
	p.Vov = 0.5
	p.NPath = 200

	// texp is not a multiple of dt: the grid must still end exactly at texp
	vp := sigmaPath(0.35, p, rand.NewSource(1))
	rows, cols := vp.sigma.Dims()

	require.Equal(t, 5, rows) // ceil(0.35/0.1) + 1
	require.Equal(t, p.NPath, cols)
	require.InDelta(t, 0.35, vp.tobs[rows-1], 1e-9)

	for j := 0; j < cols; j++ {
		require.Equal(t, 1.0, vp.sigma.At(0, j))
		for i := 0; i < rows; i++ {
			require.Greater(t, vp.sigma.At(i, j), 0.0)
		}
	}
}

func TestSigmaPathTinyExpiry(t *testing.T) {
	p := DefaultParams(0.2)
	p.NPath = 10

	// texp far below dt still gets one step
	vp := sigmaPath(1e-4, p, rand.NewSource(1))
	rows, _ := vp.sigma.Dims()
	require.Equal(t, 2, rows)
	require.InDelta(t, 1e-4, vp.tobs[rows-1], 1e-9)
}

func TestSigmaPathMartingale(t *testing.T) {
	p := DefaultParams(0.2)
	p.Vov = 0.3
	p.NPath = 50000

	vp := sigmaPath(1.0, p, rand.NewSource(99))
	require.InDelta(t, 1.0, stat.Mean(vp.terminal(), nil), 0.01)
}

func TestIntvarConstantPath(t *testing.T) {
	p := DefaultParams(0.2)
	p.NPath = 100

	// vov=0 keeps every multiplier at exactly 1
	vp := sigmaPath(0.5, p, rand.NewSource(3))
	for _, v := range intvarNormalized(vp) {
		require.InDelta(t, 1.0, v, 1e-12)
	}
}

func TestIntvarPositive(t *testing.T) {
	p := DefaultParams(0.2)
	p.Vov = 0.8
	p.NPath = 1000

	vp := sigmaPath(2.0, p, rand.NewSource(4))
	for _, v := range intvarNormalized(vp) {
		require.Greater(t, v, 0.0)
	}
}

func TestCorrShiftLimit(t *testing.T) {
	p := DefaultParams(0.2)

	p.Vov = 0.5
	require.InDelta(t, (1.3-1.0)/0.5, corrShift(p, 1.3, 0.7), 1e-12)

	// vov=0 continues to the terminal Brownian level
	p.Vov = 0.0
	require.Equal(t, 0.7, corrShift(p, 1.0, 0.7))
}
