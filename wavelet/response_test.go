package wavelet

import (
	"errors"
	"math"
	"testing"
)

func TestMagnitudeResponseHaar(t *testing.T) {
	fs, err := Coefficients(Haar)
	if err != nil {
		t.Fatalf("Coefficients error: %v", err)
	}

	const nfft = 256
	low, err := MagnitudeResponse(fs.DecompLow, nfft)
	if err != nil {
		t.Fatalf("MagnitudeResponse error: %v", err)
	}
	if len(low) != nfft/2+1 {
		t.Fatalf("bin count %d, want %d", len(low), nfft/2+1)
	}

	// DC gain of the low-pass is the tap sum (sqrt 2 for Haar).
	if math.Abs(low[0]-math.Sqrt2) > 1e-9 {
		t.Fatalf("low-pass DC gain %v, want %v", low[0], math.Sqrt2)
	}

	high, err := MagnitudeResponse(fs.DecompHigh, nfft)
	if err != nil {
		t.Fatalf("MagnitudeResponse error: %v", err)
	}
	if high[0] > 1e-10 {
		t.Fatalf("high-pass DC gain %v, want 0", high[0])
	}
	// At Nyquist the roles swap.
	if math.Abs(high[len(high)-1]-math.Sqrt2) > 1e-9 {
		t.Fatalf("high-pass Nyquist gain %v, want %v", high[len(high)-1], math.Sqrt2)
	}
}

func TestMagnitudeResponseErrors(t *testing.T) {
	if _, err := MagnitudeResponse(nil, 64); !errors.Is(err, ErrEmptyFilter) {
		t.Fatalf("expected ErrEmptyFilter, got %v", err)
	}
	if _, err := MagnitudeResponse([]float64{1, 1}, 100); !errors.Is(err, ErrInvalidNFFT) {
		t.Fatalf("expected ErrInvalidNFFT, got %v", err)
	}
	if _, err := MagnitudeResponse(make([]float64, 16), 8); !errors.Is(err, ErrFilterTooLarge) {
		t.Fatalf("expected ErrFilterTooLarge, got %v", err)
	}
}
