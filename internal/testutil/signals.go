package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// ZeroEndpointSine generates sin(halfCycles*pi*n/(length-1)), which is exactly
// zero at both ends of the buffer. Useful for energy-conservation tests where
// the boundary extension must not duplicate endpoint energy.
func ZeroEndpointSine(halfCycles, length int) []float64 {
	out := make([]float64, length)
	step := float64(halfCycles) * math.Pi / float64(length-1)
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return out
}

// TwoTone generates a smooth deterministic two-tone test signal:
// sin(2*pi*3*n/length) + 0.3*sin(2*pi*7*n/length + 0.5).
func TwoTone(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		p := 2 * math.Pi * float64(i) / float64(length)
		out[i] = math.Sin(3*p) + 0.3*math.Sin(7*p+0.5)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
