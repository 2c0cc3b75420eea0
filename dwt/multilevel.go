package dwt

import "fmt"

// DecomposeLevels iteratively decomposes the running approximation up to
// maxLevels times, starting from the original signal. Decomposition stops
// early once the running approximation has fewer than 2 samples; the
// achieved depth is reported by the band count of the result.
//
// Bands are stored coarse-to-fine: the final approximation first, then the
// detail bands from the coarsest scale down to the finest. An empty signal
// yields an empty buffer with no bands.
func (t *Transform) DecomposeLevels(signal []float64, maxLevels int) (Coefficients, error) {
	if maxLevels < 1 {
		return Coefficients{}, fmt.Errorf("%w: %d", ErrInvalidLevels, maxLevels)
	}
	if len(signal) == 0 {
		return Coefficients{}, nil
	}

	run := signal
	details := make([][]float64, 0, maxLevels) // in production order, finest first
	for level := 0; level < maxLevels; level++ {
		if len(run) < 2 {
			break
		}
		c, err := t.Decompose(run)
		if err != nil {
			return Coefficients{}, err
		}
		details = append(details, c.Band(1))
		run = c.Band(0)
	}

	total := len(run)
	for _, d := range details {
		total += len(d)
	}

	out := Coefficients{
		Data:    make([]float64, 0, total),
		Lengths: make([]int, 0, len(details)+1),
	}
	out.Data = append(out.Data, run...)
	out.Lengths = append(out.Lengths, len(run))
	for i := len(details) - 1; i >= 0; i-- {
		out.Data = append(out.Data, details[i]...)
		out.Lengths = append(out.Lengths, len(details[i]))
	}
	return out, nil
}

// ReconstructLevels inverts a multi-level decomposition by folding
// Reconstruct over the detail bands in their stored coarse-to-fine order,
// starting from the final approximation in band 0.
//
// The result is generally longer than the pre-transform signal because each
// level's boundary padding survives reconstruction; callers truncate to the
// known original length when exact-length output is required.
func (t *Transform) ReconstructLevels(c Coefficients) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.BandCount() == 0 {
		return nil, nil
	}

	run := append([]float64(nil), c.Band(0)...)
	for band := 1; band < c.BandCount(); band++ {
		run = t.Reconstruct(run, c.Band(band))
	}
	return run, nil
}
