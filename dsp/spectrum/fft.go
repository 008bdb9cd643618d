package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// RealFFT computes the same N/2+1 bins as RealDFT with algo-fft. The signal
// length must be a power of two.
func RealFFT(signal []float64) (re, im []float64, err error) {
	n := len(signal)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}

	if n&(n-1) != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, n)
	for i, x := range signal {
		buf[i] = complex(x, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := Bins(n)
	re = make([]float64, bins)
	im = make([]float64, bins)

	for k := range bins {
		re[k] = real(buf[k])
		im[k] = imag(buf[k])
	}

	return re, im, nil
}

// Analyze returns the non-negative frequency bins of signal, using RealFFT
// for power-of-two lengths and RealDFT otherwise.
func Analyze(signal []float64) (re, im []float64, err error) {
	n := len(signal)
	if n > 0 && n&(n-1) == 0 {
		return RealFFT(signal)
	}

	return RealDFT(signal)
}
