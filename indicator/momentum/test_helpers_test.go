package momentum

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func assertSeries(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Fatalf("value mismatch at %d: got %.8f, want %.8f", i, got[i], want[i])
		}
	}
}

// tail drops the warm-up prefix of a full-length reference series.
func tail(full []float64, warmUp int) []float64 {
	if warmUp >= len(full) {
		return []float64{}
	}
	return full[warmUp:]
}
