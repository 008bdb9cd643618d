package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-dsptk/internal/testutil"
)

type algorithm struct {
	name string
	fn   func(input, kernel []float64) ([]float64, error)
}

var directAlgorithms = []algorithm{
	{"input side", Direct},
	{"output side", DirectOutputSide},
}

func TestDirectAlgorithms(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		kernel []float64
		want   []float64
	}{
		{
			name:   "impulse with impulse",
			input:  []float64{1, 0, 0, 0, 0},
			kernel: []float64{1, 0, 0},
			want:   []float64{1, 0, 0, 0, 0, 0, 0},
		},
		{
			name:   "impulse with step",
			input:  []float64{1, 0, 0, 0},
			kernel: []float64{1, 1, 1},
			want:   []float64{1, 1, 1, 0, 0, 0},
		},
		{
			name:   "impulse shift",
			input:  []float64{1, 0, 0, 0},
			kernel: []float64{0, 0, 1},
			want:   []float64{0, 0, 1, 0, 0, 0},
		},
		{
			name:   "moving average",
			input:  []float64{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2},
			kernel: []float64{0.25, 0.25, 0.25, 0.25},
			want:   []float64{0.25, 0.75, 1, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.25, 0.75, 0.5},
		},
		{
			name:   "first difference",
			input:  []float64{1, 0, 2, 1, 0, 0, 1, 0, 1, 0, 0, 0},
			kernel: []float64{1, -1, 0, 0},
			want:   []float64{1, -1, 2, -1, -1, 0, 1, -1, 1, -1, 0, 0, 0, 0, 0},
		},
		{
			name:   "kernel longer than input",
			input:  []float64{1, 2},
			kernel: []float64{1, 1, 1, 1, 1},
			want:   []float64{1, 3, 3, 3, 3, 2},
		},
	}

	for _, alg := range directAlgorithms {
		for _, tt := range tests {
			t.Run(alg.name+"/"+tt.name, func(t *testing.T) {
				got, err := alg.fn(tt.input, tt.kernel)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				if len(got) != len(tt.input)+len(tt.kernel)-1 {
					t.Fatalf("length = %d, want %d", len(got), len(tt.input)+len(tt.kernel)-1)
				}

				testutil.RequireSliceEqual(t, got, tt.want)
			})
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	algorithms := []algorithm{
		{"input side", Direct},
		{"output side", DirectOutputSide},
		{"fft", FFT},
		{"auto", func(a, b []float64) ([]float64, error) { return Convolve(a, b) }},
	}

	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			if _, err := alg.fn(nil, []float64{1, 2}); !errors.Is(err, ErrEmptyInput) {
				t.Errorf("empty input: got %v, want %v", err, ErrEmptyInput)
			}

			if _, err := alg.fn([]float64{1, 2}, []float64{}); !errors.Is(err, ErrEmptyKernel) {
				t.Errorf("empty kernel: got %v, want %v", err, ErrEmptyKernel)
			}
		})
	}
}

func TestAlgorithmsAgree(t *testing.T) {
	sizes := []struct{ n, m int }{
		{1, 1}, {7, 3}, {64, 5}, {100, 64}, {1000, 65}, {257, 300}, {4096, 513},
	}

	for _, sz := range sizes {
		input := testutil.DeterministicNoise(int64(sz.n), 1, sz.n)
		kernel := testutil.DeterministicNoise(int64(sz.m)+1000, 1, sz.m)

		want, err := DirectOutputSide(input, kernel)
		if err != nil {
			t.Fatalf("DirectOutputSide: %v", err)
		}

		direct, err := Direct(input, kernel)
		if err != nil {
			t.Fatalf("Direct: %v", err)
		}

		testutil.RequireSliceNearlyEqual(t, direct, want, 1e-10)

		fft, err := FFT(input, kernel)
		if err != nil {
			t.Fatalf("FFT: %v", err)
		}

		testutil.RequireSliceNearlyEqual(t, fft, want, 1e-9)

		auto, err := Convolve(input, kernel)
		if err != nil {
			t.Fatalf("Convolve: %v", err)
		}

		testutil.RequireSliceNearlyEqual(t, auto, want, 1e-9)
	}
}

func TestConvolveThreshold(t *testing.T) {
	input := []float64{1, 0, 2, 1, 0, 0, 1, 0, 1, 0, 0, 0}
	kernel := []float64{1, -1, 0, 0}

	direct, err := Convolve(input, kernel)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}

	// Direct on small integers is exact.
	want, _ := Direct(input, kernel)
	testutil.RequireSliceEqual(t, direct, want)

	forced, err := Convolve(input, kernel, WithDirectThreshold(-1))
	if err != nil {
		t.Fatalf("Convolve FFT: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, forced, want, 1e-12)

	// Swapped arguments give the same result.
	swapped, err := Convolve(kernel, input, WithDirectThreshold(2))
	if err != nil {
		t.Fatalf("Convolve swapped: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, swapped, want, 1e-12)
}

func TestOutputLen(t *testing.T) {
	tests := []struct{ n, m, want int }{
		{5, 3, 7}, {1, 1, 1}, {0, 3, 0}, {3, 0, 0},
	}

	for _, tt := range tests {
		if got := OutputLen(tt.n, tt.m); got != tt.want {
			t.Errorf("OutputLen(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
		}
	}
}

func TestDirectToOverwrites(t *testing.T) {
	dst := []float64{9, 9, 9, 9}
	DirectTo(dst, []float64{1, 2}, []float64{1, 1, 1})

	testutil.RequireSliceEqual(t, dst, []float64{1, 3, 3, 2})
}
