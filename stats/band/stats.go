package band

import "math"

// Stats holds summary statistics of a wavelet band energy distribution.
//
// Band 0 is the approximation band; the last band carries the finest
// detail scale. Share values are fractions of the total energy in 0..1.
type Stats struct {
	BandCount     int
	Total         float64 // total signal energy
	Approximation float64 // energy share of the approximation band
	FinestDetail  float64 // energy share of the finest detail band
	Max           float64
	MaxBand       int
	Centroid      float64 // energy-weighted mean band index
	Entropy       float64 // Shannon entropy of the distribution (bits)
}

// Calculate computes band statistics from a per-band energy distribution.
//
// The distribution does not need to be pre-normalized; shares, centroid
// and entropy are computed against the distribution's own sum. The
// totalEnergy argument is carried through into the Total field so
// callers can retain the absolute scale a normalized distribution loses.
func Calculate(distribution []float64, totalEnergy float64) Stats {
	n := len(distribution)
	s := Stats{BandCount: n, Total: totalEnergy}
	if n == 0 {
		return s
	}

	sum := 0.0
	s.Max = distribution[0]
	for i, v := range distribution {
		sum += v
		if v > s.Max {
			s.Max = v
			s.MaxBand = i
		}
	}
	if sum <= 0 {
		return s
	}

	s.Approximation = distribution[0] / sum
	s.FinestDetail = distribution[n-1] / sum
	s.Centroid = centroid(distribution, sum)
	s.Entropy = entropy(distribution, sum)
	return s
}

// Centroid returns the energy-weighted mean band index of the distribution.
//
//	centroid = sum(i * e_i) / sum(e_i)
//
// A centroid near zero indicates energy concentrated in the coarse bands;
// a centroid near BandCount-1 indicates energy in the fine detail scales.
func Centroid(distribution []float64) float64 {
	sum := 0.0
	for _, v := range distribution {
		sum += v
	}
	return centroid(distribution, sum)
}

func centroid(distribution []float64, sum float64) float64 {
	if len(distribution) == 0 || sum <= 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range distribution {
		weighted += float64(i) * v
	}
	return weighted / sum
}

// Entropy returns the Shannon entropy of the distribution in bits.
//
//	entropy = -sum(p_i * log2(p_i))   with p_i = e_i / sum(e)
//
// Zero-energy bands contribute nothing. The result ranges from 0 (all
// energy in one band) to log2(BandCount) (uniform spread).
func Entropy(distribution []float64) float64 {
	sum := 0.0
	for _, v := range distribution {
		sum += v
	}
	return entropy(distribution, sum)
}

func entropy(distribution []float64, sum float64) float64 {
	if len(distribution) == 0 || sum <= 0 {
		return 0
	}
	h := 0.0
	for _, v := range distribution {
		if v <= 0 {
			continue
		}
		p := v / sum
		h -= p * math.Log2(p)
	}
	return h
}
