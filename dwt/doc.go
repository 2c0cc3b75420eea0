// Package dwt implements the discrete wavelet transform used by this library.
//
// A [Transform] is constructed for one wavelet family and is immutable
// afterwards, so a single instance can be shared across goroutines. The
// forward transform splits a signal into an approximation (low-frequency) and
// a detail (high-frequency) band via convolution-decimation; the multi-level
// variant re-decomposes the running approximation up to a requested depth.
//
// # Boundary handling
//
// Before each decomposition step the signal is extended by L-1 samples on
// both sides using symmetric mirror reflection: the leading pad is the first
// L-1 samples reversed, the trailing pad the last L-1 samples reversed
// (L is the filter length). Every convolution therefore has full filter
// support, at the cost of band lengths exceeding half the input length.
// Reconstruction output is correspondingly longer than the original signal;
// callers that need exact-length output truncate to the known sample count.
//
// # Band layout
//
// Multi-level results are stored in a flat [Coefficients] buffer whose bands
// are ordered coarse-to-fine: band 0 is the final approximation, band 1 the
// coarsest detail, and the last band the finest detail (the one produced by
// the first decomposition step). [Transform.ReconstructLevels] depends on
// this ordering; [Coefficients.Validate] checks the structural invariant
// that band lengths sum to the buffer length.
//
// # Reconstruction accuracy
//
// For the orthonormal families (Haar, Daubechies4) the round trip
// ReconstructLevels(DecomposeLevels(x, k)) reproduces the first len(x)
// samples to better than 1e-8 for depths up to at least 5. The remaining
// families cannot be exactly inverted under this transform's indexing: any
// FIR perfect-reconstruction pair here has an odd overall delay, which only
// even-length filters can absorb into the boundary padding. Measured
// worst-case round-trip error on a smooth two-tone signal of 256 samples:
//
//	family    depth 1    depth 3    depth 5
//	haar      2e-16      4e-16      7e-16
//	db4       1e-12      2e-12      2e-12
//	bior2.2   1.3e-1     8.6e-1     2.3e0
//	bior4.4   5.8e-2     1.8e-1     1.2e0
//	db8       6.3e-2     2.9e-1     1.5e0
//
// Biorthogonal22 is exact up to a single-sample delay at each level: after
// one level, output sample i equals input sample i-1 to machine precision.
package dwt
