package core

import "math"

const defaultEpsilon = 1e-12

// DoublePi is 2π, the radians-per-cycle factor used by every coefficient formula.
const DoublePi = 2 * math.Pi

// AmpDB approximates 20/ln(10) so that AmpDB*ln(x) equals 20*log10(x).
const AmpDB = 8.685889638065036553

// IAmpDB approximates ln(10)/20 so that exp(IAmpDB*x) equals 10^(x/20).
const IAmpDB = 0.11512925464970

// AmpToDB converts a linear amplitude to decibels using the natural-log
// shortcut AmpDB*ln|amp|. Zero maps to -Inf.
func AmpToDB(amp float64) float64 {
	return AmpDB * math.Log(math.Abs(amp))
}

// DBToAmp converts decibels to a linear amplitude as exp(IAmpDB*dB).
func DBToAmp(dB float64) float64 {
	return math.Exp(IAmpDB * dB)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
