package trend

import (
	"testing"

	"github.com/markcheno/go-talib"

	"github.com/evdnx/taseries/internal/testutil"
)

func TestTRIMA_EvenPeriod(t *testing.T) {
	// period 4 → SMA(3) then SMA(2).
	got, err := TRIMA(testutil.Ramp(7), 4)
	if err != nil {
		t.Fatalf("TRIMA returned error: %v", err)
	}
	assertSeries(t, got, []float64{2.5, 3.5, 4.5, 5.5})
}

func TestTRIMA_WarmUpIsPeriodMinusOne(t *testing.T) {
	for period := 1; period <= 12; period++ {
		if got := TRIMAWarmUp(period); got != period-1 {
			t.Fatalf("TRIMAWarmUp(%d) = %d, want %d", period, got, period-1)
		}
	}
}

func TestTRIMA_MatchesTalib(t *testing.T) {
	data := testutil.Closes(200)
	for _, period := range []int{3, 10, 11} {
		got, err := TRIMA(data, period)
		if err != nil {
			t.Fatalf("TRIMA(%d) returned error: %v", period, err)
		}
		assertSeries(t, got, tail(talib.Trima(data, period), TRIMAWarmUp(period)))
	}
}
