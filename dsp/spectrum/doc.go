// Package spectrum analyzes real signals in the frequency domain.
//
// [RealDFT] computes the N/2+1 non-negative frequency bins of a real signal
// by correlating it with cosine and sine basis functions. It works for any
// length and is exact for the quarter-cycle phases. [RealFFT] produces the
// same bins through algo-fft for power-of-two lengths, and [Analyze] picks
// whichever applies.
//
// Bins are returned as separate real and imaginary slices, the layout the
// algo-vecmath helpers behind [Magnitude] and [Power] expect.
package spectrum
