package spectrum

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-dsptk/dsp/core"
)

// Errors returned by the analysis functions.
var (
	ErrEmptyInput      = errors.New("spectrum: empty input")
	ErrLengthMismatch  = errors.New("spectrum: buffer length mismatch")
	ErrNotPowerOfTwo   = errors.New("spectrum: length is not a power of two")
	ErrInvalidArgument = errors.New("spectrum: invalid argument")
)

// flushLimit is the magnitude below which accumulated bins are set to zero:
// twice the float64 machine epsilon.
const flushLimit = 2 * 0x1p-52

// Bins returns the number of non-negative frequency bins of an n-point real
// DFT: n/2 + 1.
func Bins(n int) int {
	return n/2 + 1
}

// RealDFT computes the DFT of a real signal by correlation. Bin k holds
// re[k] = Σ x[n]·cos(2πkn/N) and im[k] = -Σ x[n]·sin(2πkn/N) for
// k = 0..N/2. Quarter-cycle phases use exact basis values and running sums
// smaller than twice the machine epsilon are flushed to zero.
func RealDFT(signal []float64) (re, im []float64, err error) {
	n := len(signal)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}

	bins := Bins(n)
	re = make([]float64, bins)
	im = make([]float64, bins)

	for k := range bins {
		var sumRe, sumIm float64

		for i, x := range signal {
			_, frac := math.Modf(float64(k) * float64(i) / float64(n))
			c, s := basis(frac)

			sumRe += x * c
			sumIm -= x * s

			if math.Abs(sumRe) < flushLimit {
				sumRe = 0
			}

			if math.Abs(sumIm) < flushLimit {
				sumIm = 0
			}
		}

		re[k] = sumRe
		im[k] = sumIm
	}

	return re, im, nil
}

// basis returns cos and sin of 2π·frac for frac in [0, 1). The quarter
// points are exact and every other phase is folded into the first quadrant,
// so mirrored phases get exactly mirrored values.
func basis(frac float64) (c, s float64) {
	switch {
	case frac == 0:
		return 1, 0
	case frac == 0.25:
		return 0, 1
	case frac == 0.5:
		return -1, 0
	case frac == 0.75:
		return 0, -1
	case frac < 0.25:
		return math.Cos(core.DoublePi * frac), math.Sin(core.DoublePi * frac)
	case frac < 0.5:
		u := core.DoublePi * (0.5 - frac)
		return -math.Cos(u), math.Sin(u)
	case frac < 0.75:
		u := core.DoublePi * (frac - 0.5)
		return -math.Cos(u), -math.Sin(u)
	default:
		u := core.DoublePi * (1 - frac)
		return math.Cos(u), -math.Sin(u)
	}
}
