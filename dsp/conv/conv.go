package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// defaultDirectThreshold is the longest kernel Convolve handles directly.
const defaultDirectThreshold = 64

// simdThreshold is the shortest kernel worth the vectorized inner loop.
const simdThreshold = 4

type config struct {
	directThreshold int
}

// Option configures Convolve.
type Option func(*config)

// WithDirectThreshold sets the longest kernel (after swapping so the kernel
// is the shorter sequence) that Convolve processes with Direct. Longer
// kernels use FFT. Negative values force FFT for every kernel.
func WithDirectThreshold(n int) Option {
	return func(c *config) {
		c.directThreshold = n
	}
}

// OutputLen returns the length of the full linear convolution of sequences
// of length n and m, or 0 when either is empty.
func OutputLen(n, m int) int {
	if n <= 0 || m <= 0 {
		return 0
	}

	return n + m - 1
}

func checkInputs(input, kernel []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}

	if len(kernel) == 0 {
		return ErrEmptyKernel
	}

	return nil
}

// Direct convolves input with kernel using the input-side algorithm.
// It returns a new slice of length len(input)+len(kernel)-1.
func Direct(input, kernel []float64) ([]float64, error) {
	if err := checkInputs(input, kernel); err != nil {
		return nil, err
	}

	result := make([]float64, OutputLen(len(input), len(kernel)))
	DirectTo(result, input, kernel)

	return result, nil
}

// DirectTo performs input-side convolution into dst, which must have length
// len(input)+len(kernel)-1. dst is overwritten.
func DirectTo(dst, input, kernel []float64) {
	clear(dst)

	if len(kernel) < simdThreshold {
		for i, x := range input {
			for j, h := range kernel {
				dst[i+j] += x * h
			}
		}

		return
	}

	scaled := make([]float64, len(kernel))
	for i, x := range input {
		vecmath.ScaleBlock(scaled, kernel, x)
		vecmath.AddBlockInPlace(dst[i:i+len(kernel)], scaled)
	}
}

// DirectOutputSide convolves input with kernel using the output-side
// algorithm. The result equals Direct.
func DirectOutputSide(input, kernel []float64) ([]float64, error) {
	if err := checkInputs(input, kernel); err != nil {
		return nil, err
	}

	n := len(input)
	result := make([]float64, OutputLen(n, len(kernel)))

	for i := range result {
		var sum float64

		for j, h := range kernel {
			k := i - j
			if k < 0 {
				break
			}

			if k < n {
				sum += h * input[k]
			}
		}

		result[i] = sum
	}

	return result, nil
}

// Convolve performs linear convolution with automatic algorithm selection.
// Kernels up to the direct threshold (64 samples by default) use Direct,
// longer kernels use FFT. Convolution is commutative, so the shorter
// sequence is treated as the kernel.
func Convolve(input, kernel []float64, opts ...Option) ([]float64, error) {
	if err := checkInputs(input, kernel); err != nil {
		return nil, err
	}

	cfg := config{directThreshold: defaultDirectThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(kernel) > len(input) {
		input, kernel = kernel, input
	}

	if len(kernel) <= cfg.directThreshold {
		return Direct(input, kernel)
	}

	return FFT(input, kernel)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
