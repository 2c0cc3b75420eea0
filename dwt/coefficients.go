package dwt

import "fmt"

// Coefficients is a flat wavelet coefficient buffer with its band layout.
//
// Bands are stored back to back in Data; Lengths holds one entry per band.
// For multi-level results the bands are ordered coarse-to-fine: band 0 is
// the final approximation, band 1 the coarsest detail, and the last band
// the finest detail. The invariant sum(Lengths) == len(Data) must hold;
// [Coefficients.Validate] checks it.
type Coefficients struct {
	Data    []float64
	Lengths []int
}

// BandCount returns the number of bands in the buffer.
func (c Coefficients) BandCount() int {
	return len(c.Lengths)
}

// Depth returns the decomposition depth the buffer represents
// (band count minus one, or zero for an empty buffer).
func (c Coefficients) Depth() int {
	if len(c.Lengths) == 0 {
		return 0
	}
	return len(c.Lengths) - 1
}

// Band returns the i-th band as a sub-slice of Data, or nil when i is out
// of range. The slice aliases the buffer; it is not a copy.
func (c Coefficients) Band(i int) []float64 {
	if i < 0 || i >= len(c.Lengths) {
		return nil
	}
	off := 0
	for b := 0; b < i; b++ {
		off += c.Lengths[b]
	}
	return c.Data[off : off+c.Lengths[i]]
}

// Validate checks the structural band-layout invariant: no negative band
// lengths and lengths summing to the coefficient count.
func (c Coefficients) Validate() error {
	total := 0
	for i, l := range c.Lengths {
		if l < 0 {
			return fmt.Errorf("%w: band %d has negative length %d", ErrBandLayout, i, l)
		}
		total += l
	}
	if total != len(c.Data) {
		return fmt.Errorf("%w: band lengths sum to %d, buffer holds %d coefficients",
			ErrBandLayout, total, len(c.Data))
	}
	return nil
}
