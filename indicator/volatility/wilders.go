package volatility

import (
	"gonum.org/v1/gonum/floats"

	"github.com/evdnx/taseries/indicator/core"
)

// WildersWarmUp returns the number of leading inputs Wilders consumes before
// its first value.
func WildersWarmUp(period int) int { return period - 1 }

// Wilders returns Wilder's moving average (RMA):
//
//	out[0] = mean(data[0:period])
//	out[i] = out[i-1] + (data[i+period-1] − out[i-1]) / period
//
// which is an exponential average with α = 1/period seeded by an SMA.
func Wilders(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), WildersWarmUp(period)) {
		return core.Empty(), nil
	}
	return wilders(data, period), nil
}

// wilders assumes len(data) >= period >= 1.
func wilders(data []float64, period int) []float64 {
	p := float64(period)
	out := make([]float64, len(data)-period+1)
	out[0] = floats.Sum(data[:period]) / p
	for i := 1; i < len(out); i++ {
		out[i] = out[i-1] + (data[i+period-1]-out[i-1])/p
	}
	return out
}
