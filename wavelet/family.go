package wavelet

import (
	"fmt"
	"strings"
)

// Family identifies a wavelet family.
type Family int

const (
	// Haar is the 2-tap orthonormal Haar wavelet.
	Haar Family = iota

	// Daubechies4 is the 4-tap orthonormal Daubechies wavelet.
	Daubechies4

	// Daubechies8 is a 9-tap symmetric approximation with identical
	// decomposition and reconstruction filters.
	Daubechies8

	// Biorthogonal22 is the 5-tap biorthogonal 2.2 (5/3 spline) wavelet.
	Biorthogonal22

	// Biorthogonal44 is the 9-tap biorthogonal 4.4 (CDF 9/7) wavelet with
	// reconstruction filters reusing the decomposition filters.
	Biorthogonal44
)

// Families returns all supported wavelet families in declaration order.
func Families() []Family {
	return []Family{Haar, Daubechies4, Daubechies8, Biorthogonal22, Biorthogonal44}
}

// String returns the canonical lower-case name of the family.
func (f Family) String() string {
	switch f {
	case Haar:
		return "haar"
	case Daubechies4:
		return "db4"
	case Daubechies8:
		return "db8"
	case Biorthogonal22:
		return "bior2.2"
	case Biorthogonal44:
		return "bior4.4"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ParseFamily resolves a family name as printed by [Family.String].
// Matching is case-insensitive and accepts a few common aliases
// (daubechies4, bior22, ...).
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "haar":
		return Haar, nil
	case "db4", "daubechies4":
		return Daubechies4, nil
	case "db8", "daubechies8":
		return Daubechies8, nil
	case "bior2.2", "bior22", "biorthogonal22":
		return Biorthogonal22, nil
	case "bior4.4", "bior44", "biorthogonal44":
		return Biorthogonal44, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
}
