// Package conv provides linear convolution of finite sequences.
//
// Three algorithms produce the same full-length result (len(input)+len(kernel)-1):
//
//   - [Direct]: input-side algorithm. Every input sample scales the kernel and
//     is accumulated into the output, vectorized with algo-vecmath.
//   - [DirectOutputSide]: output-side algorithm. Every output sample gathers
//     the products of the kernel with the input samples that reach it.
//   - [FFT]: multiplication of zero-padded spectra via algo-fft.
//
// [Convolve] picks direct convolution for short kernels and FFT convolution
// above a threshold configurable with [WithDirectThreshold]. For repeated
// convolution with the same kernel, an [OverlapAdd] convolver keeps the
// kernel spectrum and FFT plan between calls.
//
// # Usage
//
//	y, err := conv.Convolve(signal, kernel)
//	y, err := conv.Direct(signal, kernel)
//
//	oa, err := conv.NewOverlapAdd(kernel, 1024)
//	y, err := oa.Process(signal)
package conv
