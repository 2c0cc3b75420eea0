package analyze

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/dwt"
)

// ErrNegativeThreshold indicates a denoising threshold below zero.
var ErrNegativeThreshold = errors.New("analyze: threshold must be >= 0")

// SoftThreshold applies the shrink-toward-zero rule sign(x)*max(|x|-t, 0).
func SoftThreshold(x, t float64) float64 {
	m := math.Abs(x) - t
	if m <= 0 {
		return 0
	}
	return math.Copysign(m, x)
}

// Denoise decomposes the signal to the requested depth, soft-thresholds
// every coefficient (approximation band included), and reconstructs.
//
// The output is longer than the input; truncate to len(signal) for
// sample-aligned comparison.
func (a *Analyzer) Denoise(signal []float64, threshold float64, levels int) ([]float64, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeThreshold, threshold)
	}

	c, err := a.transform.DecomposeLevels(signal, levels)
	if err != nil {
		return nil, err
	}
	softThresholdBuffer(c, threshold)
	return a.transform.ReconstructLevels(c)
}

func softThresholdBuffer(c dwt.Coefficients, threshold float64) {
	for i, v := range c.Data {
		c.Data[i] = SoftThreshold(v, threshold)
	}
}
