package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/markcheno/go-talib"

	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/internal/testutil"
)

func TestSMA_Ramp(t *testing.T) {
	got, err := SMA(testutil.Ramp(10), 3)
	if err != nil {
		t.Fatalf("SMA returned error: %v", err)
	}
	assertSeries(t, got, []float64{2, 3, 4, 5, 6, 7, 8, 9})
}

func TestSMA_WindowLocality(t *testing.T) {
	data := testutil.Closes(30)
	base, err := SMA(data, 5)
	if err != nil {
		t.Fatalf("SMA returned error: %v", err)
	}

	// Changing data[0] only affects the first window (output index 0).
	changed := core.CopySlice(data)
	changed[0] += 1000
	got, err := SMA(changed, 5)
	if err != nil {
		t.Fatalf("SMA returned error: %v", err)
	}
	if approxEqual(got[0], base[0]) {
		t.Fatal("expected the first window to change")
	}
	assertSeries(t, got[1:], base[1:])

	for i, v := range base {
		sum := 0.0
		for _, x := range data[i : i+5] {
			sum += x
		}
		if !approxEqual(v, sum/5) {
			t.Fatalf("sma[%d] = %f, want mean of its window %f", i, v, sum/5)
		}
	}
}

func TestSMA_MatchesTalib(t *testing.T) {
	data := testutil.Closes(200)
	for _, period := range []int{2, 7, 20} {
		got, err := SMA(data, period)
		if err != nil {
			t.Fatalf("SMA(%d) returned error: %v", period, err)
		}
		assertSeries(t, got, tail(talib.Sma(data, period), SMAWarmUp(period)))
	}
}

func TestSMA_InsufficientData(t *testing.T) {
	got, err := SMA([]float64{1, 2}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}

	// A window that exactly covers the input yields a single value.
	got, err = SMA([]float64{1, 2, 3}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSeries(t, got, []float64{2})
}

func TestSMA_InvalidPeriod(t *testing.T) {
	if _, err := SMA([]float64{1, 2, 3}, 0); !errors.Is(err, core.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestSMA_Deterministic(t *testing.T) {
	data := testutil.RandomWalk(500, 7)
	a, _ := SMA(data, 14)
	b, _ := SMA(data, 14)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("repeated call differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSMA_LargeLeadingBarLeavesNoResidue(t *testing.T) {
	spiked, err := SMA([]float64{1e12, 0.1, 0.2, 0.3, 0.4}, 2)
	if err != nil {
		t.Fatalf("SMA returned error: %v", err)
	}
	if len(spiked) != 4 {
		t.Fatalf("unexpected length %d", len(spiked))
	}
	assertSeries(t, spiked[1:], []float64{0.15, 0.25, 0.35})
	for i, want := range []float64{0.15, 0.25, 0.35} {
		if math.Abs(spiked[i+1]-want) > 1e-12 {
			t.Fatalf("window %d drifted after the large bar left: got %.15f, want %.15f", i+1, spiked[i+1], want)
		}
	}
}
