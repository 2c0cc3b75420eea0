package analyze

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dwt"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Analyzer computes band-energy statistics and denoised signals using the
// multi-level wavelet transform of one family. It is immutable after
// construction and safe for concurrent use.
type Analyzer struct {
	transform *dwt.Transform
}

// New creates an Analyzer for the given wavelet family.
func New(family wavelet.Family) (*Analyzer, error) {
	tr, err := dwt.New(family)
	if err != nil {
		return nil, err
	}
	return &Analyzer{transform: tr}, nil
}

// Transform returns the underlying transform.
func (a *Analyzer) Transform() *dwt.Transform {
	return a.transform
}

// Result holds the outcome of a multi-level energy analysis.
type Result struct {
	// Levels is the achieved decomposition depth (may be lower than
	// requested for very short signals).
	Levels int

	// EnergyDistribution holds one entry per band in coarse-to-fine order,
	// normalized to sum to 1. All zero when the signal has no energy.
	EnergyDistribution []float64

	// Coeffs is the raw coefficient buffer the distribution was computed from.
	Coeffs dwt.Coefficients

	// SampleCount is the original signal length, needed to truncate
	// reconstructions back to the input size.
	SampleCount int
}

// Energy returns the sum of squared samples of a band.
func Energy(band []float64) float64 {
	if len(band) == 0 {
		return 0
	}
	sq := make([]float64, len(band))
	vecmath.MulBlock(sq, band, band)
	sum := 0.0
	for _, v := range sq {
		sum += v
	}
	return sum
}

// Analyze decomposes the signal to the requested depth and computes the
// normalized per-band energy distribution. A zero-energy signal yields an
// all-zero distribution rather than a division by zero.
func (a *Analyzer) Analyze(signal []float64, levels int) (Result, error) {
	c, err := a.transform.DecomposeLevels(signal, levels)
	if err != nil {
		return Result{}, err
	}

	energies := make([]float64, c.BandCount())
	total := 0.0
	for b := range energies {
		energies[b] = Energy(c.Band(b))
		total += energies[b]
	}

	dist := make([]float64, len(energies))
	if total > 0 {
		vecmath.ScaleBlock(dist, energies, 1/total)
	}

	return Result{
		Levels:             c.Depth(),
		EnergyDistribution: dist,
		Coeffs:             c,
		SampleCount:        len(signal),
	}, nil
}
