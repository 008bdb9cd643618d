package iir

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dsptk/dsp/signal"
	"github.com/cwbudde/algo-dsptk/internal/testutil"
)

func TestDCBlockerZeroInput(t *testing.T) {
	requireZeroInZeroOut(t, NewDCBlocker(20, testSampleRate))
}

func TestDCBlockerStepDecaysTowardsZero(t *testing.T) {
	f := NewDCBlocker(100, testSampleRate)
	out := produce(f, testutil.DC(1, 10))

	if out[0] != 1 {
		t.Fatalf("out[0] = %v, want 1", out[0])
	}

	for i := 1; i < len(out); i++ {
		if out[i] >= out[i-1] {
			t.Fatalf("out[%d] = %v not below out[%d] = %v", i, out[i], i-1, out[i-1])
		}
	}

	requireNear(t, "last output", out[len(out)-1], 0, 0.001)
}

func TestDCBlockerRemovesBias(t *testing.T) {
	f := NewDCBlocker(1, testSampleRate)

	pattern := []float64{0, 1.5, 0, -0.5}

	in := make([]float64, testSamples)
	for i := range in {
		in[i] = pattern[i%4]
	}

	out := produce(f, in)

	var dc float64
	for _, v := range out[len(out)-20:] {
		dc += v
	}

	requireNear(t, "DC over last 20 samples", dc, 0, 1e-10)
}

func TestLowPassZeroInput(t *testing.T) {
	requireZeroInZeroOut(t, NewLowPass(200, testSampleRate))
}

func TestLowPassStepRisesFromZeroToOne(t *testing.T) {
	out := produce(NewLowPass(10, testSampleRate), testutil.DC(1, testSamples))

	requireNear(t, "first output", out[0], 0, 0.1)
	requireNear(t, "last output", out[len(out)-1], 1, 0.001)
}

func TestLowPassResponse(t *testing.T) {
	t.Run("below cutoff passes", func(t *testing.T) {
		in := sine(20)
		out := produce(NewLowPass(400, testSampleRate), in)
		requireNear(t, "mean square", signal.MeanSquare(out), signal.MeanSquare(in), 0.001)
	})

	t.Run("at cutoff is 3 dB down", func(t *testing.T) {
		in := sine(100)
		out := produce(NewLowPass(100, testSampleRate), in)
		requireNear(t, "mean square", signal.MeanSquare(out), signal.MeanSquare(in)/2, 0.01)
	})

	t.Run("above cutoff is more than 3 dB down", func(t *testing.T) {
		in := sine(200)
		out := produce(NewLowPass(100, testSampleRate), in)

		if signal.MeanSquare(out) >= signal.MeanSquare(in)/2 {
			t.Fatalf("mean square %v not below half of %v", signal.MeanSquare(out), signal.MeanSquare(in))
		}
	})
}

func TestHighPassZeroInput(t *testing.T) {
	requireZeroInZeroOut(t, NewHighPass(200, testSampleRate))
}

func TestHighPassStepFallsFromOneToZero(t *testing.T) {
	out := produce(NewHighPass(10, testSampleRate), testutil.DC(1, testSamples))

	requireNear(t, "first output", out[0], 1, 0.1)
	requireNear(t, "last output", out[len(out)-1], 0, 0.001)
}

func TestHighPassResponse(t *testing.T) {
	t.Run("above cutoff passes", func(t *testing.T) {
		in := sine(400)
		out := produce(NewHighPass(20, testSampleRate), in)
		requireNear(t, "mean square", signal.MeanSquare(out), signal.MeanSquare(in), 0.001)
	})

	t.Run("at cutoff is 3 dB down", func(t *testing.T) {
		in := sine(100)
		out := produce(NewHighPass(100, testSampleRate), in)
		requireNear(t, "mean square", signal.MeanSquare(out), signal.MeanSquare(in)/2, 0.02)
	})

	t.Run("below cutoff is more than 3 dB down", func(t *testing.T) {
		in := sine(100)
		out := produce(NewHighPass(200, testSampleRate), in)

		if signal.MeanSquare(out) >= signal.MeanSquare(in)/2 {
			t.Fatalf("mean square %v not below half of %v", signal.MeanSquare(out), signal.MeanSquare(in))
		}
	})
}

func TestOnePoleCoefficients(t *testing.T) {
	lp := NewLowPass(100, testSampleRate).Coefficients()
	requireNear(t, "low-pass DC gain a0+b1", lp.A0+lp.B1, 1, 1e-15)

	hp := NewHighPass(100, testSampleRate).Coefficients()
	if hp.A1 != -hp.A0 {
		t.Fatalf("high-pass a1 = %v, want %v", hp.A1, -hp.A0)
	}

	if hp.B1 != lp.B1 {
		t.Fatalf("high-pass pole %v differs from low-pass pole %v", hp.B1, lp.B1)
	}

	dc := NewDCBlocker(100, testSampleRate).Coefficients()
	requireNear(t, "DC blocker R", dc.B1, 1-0.2*math.Pi, 1e-12)
}
