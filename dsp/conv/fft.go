package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT convolves input with kernel by multiplying their spectra. Both
// sequences are zero-padded to the next power of two at or above
// len(input)+len(kernel)-1, so the circular product equals the linear
// convolution. The result matches Direct up to rounding.
func FFT(input, kernel []float64) ([]float64, error) {
	if err := checkInputs(input, kernel); err != nil {
		return nil, err
	}

	outputLen := OutputLen(len(input), len(kernel))
	fftSize := nextPowerOf2(outputLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	x := padComplex(make([]complex128, fftSize), input)
	h := padComplex(make([]complex128, fftSize), kernel)

	if err := plan.Forward(x, x); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	if err := plan.Forward(h, h); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range x {
		x[i] *= h[i]
	}

	if err := plan.Inverse(x, x); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, outputLen)
	for i := range result {
		result[i] = real(x[i])
	}

	return result, nil
}

func padComplex(dst []complex128, src []float64) []complex128 {
	clear(dst)

	for i, v := range src {
		dst[i] = complex(v, 0)
	}

	return dst
}

// OverlapAdd is a reusable FFT convolver for a fixed kernel. Input is cut
// into blocks, each block is convolved via FFT and the tails are added into
// the output.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan  *algofft.Plan[complex128]
	block []complex128
}

// NewOverlapAdd creates an overlap-add convolver. A blockSize of 0 picks the
// kernel length rounded up to a power of two, but at least 256.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	if blockSize == 0 {
		blockSize = max(nextPowerOf2(len(kernel)), 256)
	}

	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: padComplex(make([]complex128, fftSize), kernel),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		block:     make([]complex128, fftSize),
	}

	if err := plan.Forward(oa.kernelFFT, oa.kernelFFT); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, OutputLen(len(input), oa.kernelLen))
	if err := oa.processInto(output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessTo writes the full linear convolution of input into output, which
// must have length len(input)+KernelLen()-1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}

	if want := OutputLen(len(input), oa.kernelLen); len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	clear(output)

	return oa.processInto(output, input)
}

func (oa *OverlapAdd) processInto(output, input []float64) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		padComplex(oa.block, input[start:end])

		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.block {
			oa.block[i] *= oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.block, oa.block); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		tail := min(end-start+oa.kernelLen-1, len(output)-start)
		for i := range tail {
			output[start+i] += real(oa.block[i])
		}
	}

	return nil
}
