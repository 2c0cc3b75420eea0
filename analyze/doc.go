// Package analyze provides wavelet-domain signal analysis and denoising.
//
// An [Analyzer] wraps a dwt.Transform for one wavelet family and offers two
// operations on top of the multi-level transform:
//
//   - [Analyzer.Analyze] decomposes a signal and reports the normalized
//     energy distribution across the coefficient bands, from the final
//     approximation (band 0) down to the finest detail band.
//   - [Analyzer.Denoise] shrinks every coefficient with the soft-threshold
//     rule sign(x)*max(|x|-t, 0) and reconstructs the signal.
//
// Soft thresholding is applied to the approximation band as well, not only
// to the detail bands. Conventional wavelet denoising leaves the
// approximation untouched; this library shrinks it too, and keeps doing so
// deliberately, because changing the policy would silently alter denoised
// output. The practical effect is a small amplitude bias proportional to
// the threshold.
//
// Reconstruction output is longer than the input signal (see package dwt);
// [Result.SampleCount] records the original length so callers can truncate.
package analyze
