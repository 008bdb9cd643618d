package iir

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dsptk/dsp/signal"
	"github.com/cwbudde/algo-dsptk/internal/testutil"
)

const (
	testSampleRate = 1000.0
	testSamples    = 10000
)

func produce(f *Filter, input []float64) []float64 {
	return testutil.Produce(input, f.ProcessSample)
}

func sine(freqHz float64) []float64 {
	return testutil.DeterministicSine(freqHz, testSampleRate, 1, testSamples)
}

// gainDBAt drives f with a sine at freqHz and returns the mean-square gain in dB.
func gainDBAt(f *Filter, freqHz float64) float64 {
	in := sine(freqHz)
	return signal.GainDB(in, produce(f, in))
}

func requireZeroInZeroOut(t *testing.T, f *Filter) {
	t.Helper()

	out := produce(f, make([]float64, 10))
	for i, v := range out {
		if v != 0 {
			t.Fatalf("%s: out[%d] = %v, want 0", f.Kind(), i, v)
		}
	}
}

func requireNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v ± %v", name, got, want, tol)
	}
}
