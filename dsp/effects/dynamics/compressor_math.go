//go:build !fastmath

package dynamics

import "github.com/cwbudde/algo-dsptk/dsp/core"

// ampToDB converts an amplitude to dB using the exact natural logarithm.
func ampToDB(amp float64) float64 {
	return core.AmpToDB(amp)
}

// dbToAmp converts dB to an amplitude using the exact exponential.
func dbToAmp(dB float64) float64 {
	return core.DBToAmp(dB)
}
