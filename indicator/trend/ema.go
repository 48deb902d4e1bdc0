package trend

import (
	"gonum.org/v1/gonum/floats"

	"github.com/evdnx/taseries/indicator/core"
)

// EMASmoothingFactor returns the standard EMA smoothing factor 2/(n+1).
func EMASmoothingFactor(n int) float64 {
	return 2.0 / float64(n+1)
}

// EMAWarmUp returns the number of leading inputs EMA consumes before its
// first value.
func EMAWarmUp(period int) int { return period - 1 }

// EMA returns the exponential moving average of data. The first value is the
// SMA of the first period inputs; every later value follows
// ema[i] = α·data[i] + (1-α)·ema[i-1] with α = 2/(period+1).
func EMA(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), EMAWarmUp(period)) {
		return core.Empty(), nil
	}
	return ema(data, period), nil
}

// ema assumes len(data) >= period >= 1.
func ema(data []float64, period int) []float64 {
	seed := floats.Sum(data[:period]) / float64(period)
	return exponential(data[period-1:], seed, EMASmoothingFactor(period))
}

// exponential runs the smoothing recurrence over values. out[0] is seed and
// values[0] is ignored (it is the input the seed stands in for).
func exponential(values []float64, seed, alpha float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	out[0] = seed
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
