package band_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/stats/band"
)

func ExampleCalculate() {
	// Energy distribution of a 3-band decomposition: most of the
	// energy sits in the approximation band.
	dist := []float64{0.7, 0.2, 0.1}

	s := band.Calculate(dist, 12.5)
	fmt.Printf("approximation share: %.2f\n", s.Approximation)
	fmt.Printf("centroid: %.4f\n", s.Centroid)
	fmt.Printf("entropy: %.4f bits\n", s.Entropy)
	// Output:
	// approximation share: 0.70
	// centroid: 0.4000
	// entropy: 1.1568 bits
}
