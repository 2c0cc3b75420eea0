package dwt

import "errors"

// Errors returned by transform operations.
var (
	// ErrInputTooShort indicates the signal is shorter than the L-1 samples
	// required for symmetric boundary extension with the selected family.
	ErrInputTooShort = errors.New("dwt: input shorter than filter boundary extension")

	// ErrInvalidLevels indicates a non-positive requested decomposition depth.
	ErrInvalidLevels = errors.New("dwt: levels must be >= 1")

	// ErrBandLayout indicates a coefficient buffer whose band structure is
	// inconsistent (band count, or lengths not summing to the buffer size).
	ErrBandLayout = errors.New("dwt: inconsistent band layout")
)
