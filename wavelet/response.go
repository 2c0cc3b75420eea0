package wavelet

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response evaluation.
var (
	ErrEmptyFilter    = errors.New("wavelet: empty filter")
	ErrInvalidNFFT    = errors.New("wavelet: nfft must be a power of two >= filter length")
	ErrFilterTooLarge = errors.New("wavelet: filter longer than nfft")
)

// MagnitudeResponse evaluates the one-sided magnitude response of a single
// filter on an nfft-point FFT grid. The result has nfft/2+1 bins covering
// normalised frequency [0, 0.5]; bin i corresponds to f = i/nfft cycles per
// sample.
//
// nfft must be a power of two and at least the filter length.
func MagnitudeResponse(taps []float64, nfft int) ([]float64, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyFilter
	}
	if nfft < 2 || nfft&(nfft-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNFFT, nfft)
	}
	if len(taps) > nfft {
		return nil, fmt.Errorf("%w: %d > %d", ErrFilterTooLarge, len(taps), nfft)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("wavelet: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, nfft)
	for i, v := range taps {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, nfft)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("wavelet: forward FFT failed: %w", err)
	}

	bins := nfft/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}
