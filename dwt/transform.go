package dwt

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Transform performs discrete wavelet transforms for one wavelet family.
//
// The filter set is resolved eagerly at construction; a Transform holds no
// other state and is safe for concurrent use.
type Transform struct {
	family  wavelet.Family
	filters wavelet.FilterSet
}

// New creates a Transform for the given wavelet family.
func New(family wavelet.Family) (*Transform, error) {
	fs, err := wavelet.Coefficients(family)
	if err != nil {
		return nil, err
	}
	return &Transform{family: family, filters: fs}, nil
}

// Family returns the wavelet family the transform was built for.
func (t *Transform) Family() wavelet.Family {
	return t.family
}

// FilterLength returns the filter length L of the selected family.
func (t *Transform) FilterLength() int {
	return t.filters.Length()
}

// Extend pads the signal by L-1 samples on each side using symmetric mirror
// reflection: the leading pad is the first L-1 samples reversed, the trailing
// pad the last L-1 samples reversed.
//
// Returns ErrInputTooShort when len(signal) < L-1.
func (t *Transform) Extend(signal []float64) ([]float64, error) {
	e := t.filters.Length() - 1
	if len(signal) < e {
		return nil, fmt.Errorf("%w: %s needs %d samples, got %d",
			ErrInputTooShort, t.family, e, len(signal))
	}

	out := make([]float64, len(signal)+2*e)
	for i := 0; i < e; i++ {
		out[i] = signal[e-1-i]
		out[e+len(signal)+i] = signal[len(signal)-1-i]
	}
	copy(out[e:], signal)
	return out, nil
}

// Decompose performs one level of convolution-decimation, splitting the
// signal into an approximation and a detail band of equal length
// (len(signal)+2*(L-1))/2. An empty signal yields an empty buffer with no
// bands.
func (t *Transform) Decompose(signal []float64) (Coefficients, error) {
	if len(signal) == 0 {
		return Coefficients{}, nil
	}

	padded, err := t.Extend(signal)
	if err != nil {
		return Coefficients{}, err
	}

	dl := t.filters.DecompLow
	dh := t.filters.DecompHigh
	l := len(dl)
	outLen := len(padded) / 2

	data := make([]float64, 2*outLen)
	approx := data[:outLen]
	detail := data[outLen:]
	for i := 0; i < outLen; i++ {
		var lo, hi float64
		base := 2 * i
		// The last output sample may run past the padded signal when its
		// length is odd; missing taps contribute zero.
		n := l
		if base+n > len(padded) {
			n = len(padded) - base
		}
		for j := 0; j < n; j++ {
			s := padded[base+j]
			lo += s * dl[j]
			hi += s * dh[j]
		}
		approx[i] = lo
		detail[i] = hi
	}

	return Coefficients{Data: data, Lengths: []int{outLen, outLen}}, nil
}

// Reconstruct combines an approximation and a detail band into a signal of
// length 2*len(approx) by upsampling-accumulation with the reconstruction
// filters. The two bands are expected to come from one Decompose call;
// a detail band of different length only contributes where it has samples.
func (t *Transform) Reconstruct(approx, detail []float64) []float64 {
	rl := t.filters.RecLow
	rh := t.filters.RecHigh
	l := len(rl)

	out := make([]float64, 2*len(approx))
	for i := range out {
		var sum float64
		for j := 0; j < l; j++ {
			if (i+j)%2 != 0 {
				continue
			}
			k := (i + j) / 2
			if k < len(approx) {
				sum += approx[k] * rl[j]
			}
			if k < len(detail) {
				sum += detail[k] * rh[j]
			}
		}
		out[i] = sum
	}
	return out
}

// ReconstructBuffer is the strict single-level inverse entry point: it
// requires a buffer with exactly two bands whose lengths sum to the
// coefficient count, and reports ErrBandLayout otherwise.
func (t *Transform) ReconstructBuffer(c Coefficients) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.BandCount() != 2 {
		return nil, fmt.Errorf("%w: expected 2 bands, got %d", ErrBandLayout, c.BandCount())
	}
	return t.Reconstruct(c.Band(0), c.Band(1)), nil
}
