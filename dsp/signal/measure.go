package signal

import "math"

// MeanSquare returns the average of x[n]². An empty slice yields 0.
func MeanSquare(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}

	return sumSq / float64(len(x))
}

// RMS returns the root-mean-square of x.
func RMS(x []float64) float64 {
	return math.Sqrt(MeanSquare(x))
}

// GainDB returns the level change from in to out in dB, computed from the
// mean-square ratio: 10*log10(ms(out)/ms(in)).
func GainDB(in, out []float64) float64 {
	return 10 * math.Log10(MeanSquare(out)/MeanSquare(in))
}
