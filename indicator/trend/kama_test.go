package trend

import (
	"errors"
	"testing"

	"github.com/markcheno/go-talib"

	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/internal/testutil"
)

func TestKAMA_Trend(t *testing.T) {
	// A straight line has ER = 1, so sc = (2/3)^2 = 4/9.
	got, err := KAMA([]float64{1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatalf("KAMA returned error: %v", err)
	}
	second := 2 + 4.0/9
	third := second + 4.0/9*(4-second)
	assertSeries(t, got, []float64{2, second, third})
}

func TestKAMA_ChoppyMarketUsesSlowConstant(t *testing.T) {
	// data[i] == data[i-2] everywhere → ER = 0, sc = (2/31)^2.
	data := []float64{1, 2, 1, 2, 1}
	got, err := KAMA(data, 2)
	if err != nil {
		t.Fatalf("KAMA returned error: %v", err)
	}
	sc := (2.0 / 31) * (2.0 / 31)
	want := []float64{2}
	for i := 2; i < len(data); i++ {
		prev := want[len(want)-1]
		want = append(want, prev+sc*(data[i]-prev))
	}
	assertSeries(t, got, want)
}

func TestKAMA_ConstantInput(t *testing.T) {
	got, err := KAMA(testutil.Constant(40, 7), 10)
	if err != nil {
		t.Fatalf("KAMA returned error: %v", err)
	}
	assertSeries(t, got, testutil.Constant(31, 7))
}

func TestKAMA_InvalidParams(t *testing.T) {
	if _, err := KAMAWithParams(testutil.Ramp(10), 3, 30, 2); !errors.Is(err, core.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams for fast > slow, got %v", err)
	}
	if _, err := KAMAWithParams(testutil.Ramp(10), 3, 0, 30); !errors.Is(err, core.ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams for fast < 1, got %v", err)
	}
}

func TestKAMA_MatchesTalib(t *testing.T) {
	data := testutil.Closes(200)
	for _, period := range []int{5, 10, 30} {
		got, err := KAMA(data, period)
		if err != nil {
			t.Fatalf("KAMA(%d) returned error: %v", period, err)
		}
		if got[0] != data[period-1] {
			t.Fatalf("KAMA(%d) seed = %v, want data[%d] = %v", period, got[0], period-1, data[period-1])
		}
		// talib leaves the seed bar at zero and starts at index period.
		assertSeries(t, got[1:], talib.Kama(data, period)[period:])
	}
}
