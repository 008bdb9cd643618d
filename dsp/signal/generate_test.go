package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dsptk/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	x, err := g.Sine(100, 1, 128)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	if len(x) != 128 {
		t.Fatalf("len = %d, want 128", len(x))
	}
}

func TestSineInvalidLength(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Sine(100, 1, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestSineMatchesNormalized(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	x, err := g.Sine(250, 0.5, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	y := SineNormalized(0.25, 64, 0.5)
	for i := range x {
		if x[i] != y[i] {
			t.Fatalf("x[%d] = %v, y[%d] = %v", i, x[i], i, y[i])
		}
	}
}

func TestSineNormalizedQuarterRate(t *testing.T) {
	x := SineNormalized(0.25, 8, 2)
	want := []float64{0, 2, 0, -2, 0, 2, 0, -2}

	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSineNormalizedEmpty(t *testing.T) {
	if x := SineNormalized(0.1, 0, 1); x != nil {
		t.Fatalf("expected nil, got %v", x)
	}
}

func TestStep(t *testing.T) {
	g := NewGenerator()

	x, err := g.Step(0.75, 5)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}

	for i, v := range x {
		if v != 0.75 {
			t.Fatalf("x[%d] = %v, want 0.75", i, v)
		}
	}

	if _, err := g.Step(1, -1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(7))

	a, err := g.WhiteNoise(0.5, 64)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	b, _ := g.WhiteNoise(0.5, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}

		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("a[%d] = %v exceeds amplitude", i, a[i])
		}
	}

	if _, err := g.WhiteNoise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}
