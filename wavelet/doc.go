// Package wavelet defines the supported wavelet families and their filter banks.
//
// A wavelet family is a quadruple of FIR filters: decomposition low-pass and
// high-pass (analysis), and reconstruction low-pass and high-pass (synthesis).
// All four filters of a family share a common length L. The filter taps are
// precomputed package-level constants; [Coefficients] returns a private copy
// so callers can never mutate the registry.
//
// # Supported families
//
//   - [Haar] (L=2): orthonormal, exact reconstruction.
//   - [Daubechies4] (L=4): orthonormal 4-tap Daubechies, exact reconstruction.
//   - [Daubechies8] (L=9): 9-tap symmetric approximation with identical
//     decomposition and reconstruction filters. Reconstruction is approximate.
//   - [Biorthogonal22] (L=5): 5/3 spline analysis pair with distinct
//     reconstruction filters. Reconstruction is exact up to a one-sample delay.
//   - [Biorthogonal44] (L=9): CDF 9/7 analysis pair; reconstruction reuses the
//     decomposition filters. Reconstruction is approximate.
//
// The two approximate families are intentional simplifications carried over
// from the filter tables this library standardises on; substituting
// mathematically stricter filter banks would silently change transform output.
// See the dwt package documentation for the measured reconstruction error of
// each family.
//
// # Usage
//
//	fs, err := wavelet.Coefficients(wavelet.Daubechies4)
//	if err != nil {
//	    ...
//	}
//	fmt.Println(fs.Length(), fs.DecompLow)
//
// [MagnitudeResponse] evaluates the frequency response of a single filter on
// an FFT grid, which is useful for inspecting the band split of a family.
package wavelet
