package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

func checkParts(re, im []float64) error {
	if len(re) != len(im) {
		return fmt.Errorf("%w: re %d, im %d", ErrLengthMismatch, len(re), len(im))
	}

	return nil
}

// Magnitude returns sqrt(re[k]² + im[k]²) for each bin.
func Magnitude(re, im []float64) ([]float64, error) {
	if err := checkParts(re, im); err != nil {
		return nil, err
	}

	out := make([]float64, len(re))
	MagnitudeFromParts(out, re, im)

	return out, nil
}

// MagnitudeFromParts computes |X[k]| into dst.
//
// This is the zero-allocation fast path. All three slices must have the
// same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power returns re[k]² + im[k]² for each bin.
func Power(re, im []float64) ([]float64, error) {
	if err := checkParts(re, im); err != nil {
		return nil, err
	}

	out := make([]float64, len(re))
	PowerFromParts(out, re, im)

	return out, nil
}

// PowerFromParts computes |X[k]|² into dst. All three slices must have the
// same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns atan2(im[k], re[k]) for each bin in radians.
func Phase(re, im []float64) ([]float64, error) {
	if err := checkParts(re, im); err != nil {
		return nil, err
	}

	out := make([]float64, len(re))
	for k := range out {
		out[k] = math.Atan2(im[k], re[k])
	}

	return out, nil
}

// UnwrapPhase returns a new phase slice with ±2π discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]

		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}

		out[i] = phase[i] + offset
	}

	return out
}

// BinFrequency returns the center frequency in Hz of bin k of an n-point
// transform at the given sample rate.
func BinFrequency(k, n int, sampleRate float64) (float64, error) {
	if n <= 0 || k < 0 || k >= Bins(n) || sampleRate <= 0 {
		return 0, fmt.Errorf("%w: bin %d of %d at %g Hz", ErrInvalidArgument, k, n, sampleRate)
	}

	return float64(k) * sampleRate / float64(n), nil
}
