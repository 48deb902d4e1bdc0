package trend

import "github.com/evdnx/taseries/indicator/core"

// SMAWarmUp returns the number of leading inputs SMA consumes before its
// first value.
func SMAWarmUp(period int) int { return period - 1 }

// SMA returns the arithmetic mean of every trailing window of length period.
// The first value corresponds to data[period-1].
func SMA(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), SMAWarmUp(period)) {
		return core.Empty(), nil
	}
	return sma(data, period), nil
}

// sma assumes len(data) >= period >= 1.
func sma(data []float64, period int) []float64 {
	sums := core.RollingSum(data, period)
	p := float64(period)
	for i := range sums {
		sums[i] /= p
	}
	return sums
}
