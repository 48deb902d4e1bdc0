package trend

import (
	"fmt"
	"math"

	"github.com/evdnx/taseries/indicator/core"
)

// Default KAMA smoothing constants, expressed as EMA periods.
const (
	DefaultKAMAFast = 2
	DefaultKAMASlow = 30
)

// KAMAWarmUp returns the number of leading inputs KAMA consumes before its
// first value.
func KAMAWarmUp(period int) int { return period - 1 }

// KAMA returns Kaufman's adaptive moving average with the default fast (2) and
// slow (30) smoothing periods.
func KAMA(data []float64, period int) ([]float64, error) {
	return KAMAWithParams(data, period, DefaultKAMAFast, DefaultKAMASlow)
}

// KAMAWithParams returns Kaufman's adaptive moving average.
//
// The efficiency ratio over the last period changes is
//
//	ER = |data[i] − data[i−period]| / Σ|data[j] − data[j−1]|
//
// (0 when the denominator is 0) and the smoothing constant is
// sc = (ER·(fastSC − slowSC) + slowSC)² with fastSC = 2/(fast+1) and
// slowSC = 2/(slow+1). The series is seeded with data[period−1].
func KAMAWithParams(data []float64, period, fast, slow int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := core.ValidatePeriod("fast period", fast, 1); err != nil {
		return nil, err
	}
	if err := core.ValidatePeriod("slow period", slow, 1); err != nil {
		return nil, err
	}
	if fast > slow {
		return nil, fmt.Errorf("%w: fast period (%d) must not exceed slow period (%d)", core.ErrInvalidParams, fast, slow)
	}
	if core.Insufficient(len(data), KAMAWarmUp(period)) {
		return core.Empty(), nil
	}

	fastSC := EMASmoothingFactor(fast)
	slowSC := EMASmoothingFactor(slow)

	// volatility[k] is Σ|Δ| over the period changes ending at data[k+period].
	changes := make([]float64, len(data)-1)
	for j := 1; j < len(data); j++ {
		changes[j-1] = math.Abs(data[j] - data[j-1])
	}
	volatility := core.RollingSum(changes, period)

	out := make([]float64, len(data)-period+1)
	out[0] = data[period-1]
	for i := period; i < len(data); i++ {
		er := 0.0
		if vol := volatility[i-period]; vol != 0 {
			er = math.Abs(data[i]-data[i-period]) / vol
		}
		sc := er*(fastSC-slowSC) + slowSC
		sc *= sc
		prev := out[i-period]
		out[i-period+1] = prev + sc*(data[i]-prev)
	}
	return out, nil
}
