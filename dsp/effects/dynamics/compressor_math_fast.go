//go:build fastmath

package dynamics

import (
	"math"

	"github.com/cwbudde/algo-dsptk/dsp/core"
	"github.com/meko-christian/algo-approx"
)

// ampToDB converts an amplitude to dB using a fast logarithm approximation.
// Silence maps to -Inf like the exact conversion.
func ampToDB(amp float64) float64 {
	amp = math.Abs(amp)
	if amp == 0 {
		return math.Inf(-1)
	}

	return core.AmpDB * approx.FastLog(amp)
}

// dbToAmp converts dB to an amplitude using a fast exponential approximation.
func dbToAmp(dB float64) float64 {
	return approx.FastExp(core.IAmpDB * dB)
}
