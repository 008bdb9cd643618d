package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair is within eps. The failure names the worst index.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	diff, at := WorstDiff(got, want)
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", at, got[at], want[at], diff, eps)
	}
}

// RequireSliceEqual fails t unless got and want match bit for bit.
func RequireSliceEqual(t *testing.T, got, want []float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i, v := range got {
		if v != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, v, want[i])
		}
	}
}

// RequireFinite fails t on the first NaN or infinite sample.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// WorstDiff returns the largest absolute difference over the common prefix
// of a and b and the index where it occurs. A NaN difference is reported
// immediately. Empty input yields (0, -1).
func WorstDiff(a, b []float64) (float64, int) {
	worst, at := 0.0, -1

	for i := range min(len(a), len(b)) {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			return d, i
		}

		if at < 0 || d > worst {
			worst, at = d, i
		}
	}

	return worst, at
}
