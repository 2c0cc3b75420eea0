package dwt_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/dwt"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

func ExampleTransform_Decompose() {
	tr, _ := dwt.New(wavelet.Haar)

	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	c, _ := tr.Decompose(signal)

	fmt.Printf("bands: %d\n", c.BandCount())
	fmt.Printf("band lengths: %v\n", c.Lengths)

	// Output:
	// bands: 2
	// band lengths: [5 5]
}

func ExampleTransform_DecomposeLevels() {
	tr, _ := dwt.New(wavelet.Daubechies4)

	signal := make([]float64, 256)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 32)
	}

	c, _ := tr.DecomposeLevels(signal, 3)
	fmt.Printf("depth: %d\n", c.Depth())
	fmt.Printf("bands: %d\n", c.BandCount())

	out, _ := tr.ReconstructLevels(c)
	maxErr := 0.0
	for i := range signal {
		if d := math.Abs(out[i] - signal[i]); d > maxErr {
			maxErr = d
		}
	}
	fmt.Printf("round trip exact: %v\n", maxErr < 1e-8)

	// Output:
	// depth: 3
	// bands: 4
	// round trip exact: true
}
