package volume

import (
	"errors"
	"math"
	"testing"

	"github.com/markcheno/go-talib"

	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/internal/testutil"
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

func TestVWMA_Calculation(t *testing.T) {
	got, err := VWMA([]float64{1, 2, 3}, []float64{1, 1, 2}, 2)
	if err != nil {
		t.Fatalf("VWMA returned error: %v", err)
	}
	assertSeries(t, got, []float64{1.5, 8.0 / 3})
}

func TestVWMA_EqualVolumeIsSMA(t *testing.T) {
	price := testutil.Closes(60)
	got, err := VWMA(price, testutil.Constant(60, 500), 10)
	if err != nil {
		t.Fatalf("VWMA returned error: %v", err)
	}
	assertSeries(t, got, talib.Sma(price, 10)[VWMAWarmUp(10):])
}

func TestVWMA_ZeroVolumeIsNaN(t *testing.T) {
	got, err := VWMA([]float64{1, 2, 3}, []float64{0, 0, 1}, 2)
	if err != nil {
		t.Fatalf("VWMA returned error: %v", err)
	}
	if len(got) != 2 || !math.IsNaN(got[0]) || got[1] != 3 {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestVWMA_Validation(t *testing.T) {
	if _, err := VWMA([]float64{1, 2}, []float64{1}, 1); !errors.Is(err, core.ErrMismatchedLengths) {
		t.Fatalf("expected ErrMismatchedLengths, got %v", err)
	}
	if _, err := VWMA([]float64{1, 2}, []float64{1, 2}, 0); !errors.Is(err, core.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
	got, err := VWMA([]float64{1, 2}, []float64{1, 2}, 3)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v (%v)", got, err)
	}
}

func TestVWAP_Calculation(t *testing.T) {
	got, err := VWAP([]float64{10, 11}, []float64{8, 9}, []float64{9, 10}, []float64{2, 1})
	if err != nil {
		t.Fatalf("VWAP returned error: %v", err)
	}
	// ((9*2) + (10*1)) / (2+1) = 28/3
	assertSeries(t, got, []float64{9, 28.0 / 3})
}

func TestMFI_MatchesTalib(t *testing.T) {
	high, low, close, volume := testutil.OHLCV(150)
	got, err := MFI(high, low, close, volume, 14)
	if err != nil {
		t.Fatalf("MFI returned error: %v", err)
	}
	assertSeries(t, got, talib.Mfi(high, low, close, volume, 14)[MFIWarmUp(14):])
}

func TestMFI_Bounds(t *testing.T) {
	high, low, close, volume := testutil.OHLCV(200)
	got, err := MFI(high, low, close, volume, 5)
	if err != nil {
		t.Fatalf("MFI returned error: %v", err)
	}
	for i, v := range got {
		if v < 0 || v > 100 {
			t.Fatalf("MFI out of range at %d: %v", i, v)
		}
	}

	flat := testutil.Constant(10, 3)
	neutral, err := MFI(flat, flat, flat, flat, 3)
	if err != nil {
		t.Fatalf("MFI returned error: %v", err)
	}
	for _, v := range neutral {
		if v != 50 {
			t.Fatalf("expected 50 without money flow, got %v", neutral)
		}
	}
}
