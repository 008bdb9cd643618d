// Package testutil holds signal fixtures and tolerance checks shared by the
// package tests.
package testutil

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-dsptk/dsp/core"
)

// DeterministicSine returns length samples of a sine at freqHz starting at
// phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	w := core.DoublePi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}

	return out
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude). The
// same seed always yields the same sequence.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	out := make([]float64, length)

	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns a unit impulse at pos. A pos outside the buffer yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC returns a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Produce feeds input through a per-sample processor such as
// Filter.ProcessSample and collects the outputs.
func Produce(input []float64, process func(float64) float64) []float64 {
	out := make([]float64, len(input))
	for i, x := range input {
		out[i] = process(x)
	}

	return out
}
