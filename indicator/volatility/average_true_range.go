package volatility

import (
	"math"

	"github.com/evdnx/taseries/indicator/core"
)

// TrueRangeWarmUp is the number of leading bars TrueRange drops. The first
// bar has no previous close and produces no value.
const TrueRangeWarmUp = 1

// TrueRange returns max(high−low, |high−prevClose|, |low−prevClose|) for every
// bar after the first. Output i belongs to input bar i+1.
func TrueRange(high, low, close []float64) ([]float64, error) {
	if err := core.SameLength(high, low, close); err != nil {
		return nil, err
	}
	if core.Insufficient(len(close), TrueRangeWarmUp) {
		return core.Empty(), nil
	}
	return trueRange(high, low, close), nil
}

func trueRange(high, low, close []float64) []float64 {
	out := make([]float64, len(close)-1)
	for i := 1; i < len(close); i++ {
		prev := close[i-1]
		highLow := high[i] - low[i]
		highPrevClose := math.Abs(high[i] - prev)
		lowPrevClose := math.Abs(low[i] - prev)
		out[i-1] = math.Max(highLow, math.Max(highPrevClose, lowPrevClose))
	}
	return out
}

// ATRWarmUp returns the number of leading bars ATR consumes before its first
// value: one for the missing previous close plus the Wilder seed window.
func ATRWarmUp(period int) int { return TrueRangeWarmUp + WildersWarmUp(period) }

// ATR returns the average true range: Wilder's moving average of TrueRange.
func ATR(high, low, close []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := core.SameLength(high, low, close); err != nil {
		return nil, err
	}
	if core.Insufficient(len(close), ATRWarmUp(period)) {
		return core.Empty(), nil
	}
	return wilders(trueRange(high, low, close), period), nil
}
