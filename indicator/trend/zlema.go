package trend

import (
	"gonum.org/v1/gonum/floats"

	"github.com/evdnx/taseries/indicator/core"
)

// ZLEMALag returns the de-lag offset used by ZLEMA: (period-1)/2, truncated.
func ZLEMALag(period int) int { return (period - 1) / 2 }

// ZLEMAWarmUp returns the number of leading inputs ZLEMA consumes before its
// first value.
func ZLEMAWarmUp(period int) int { return period - 1 }

// ZLEMA returns the zero-lag exponential moving average. The input is first
// de-lagged, d[i] = 2·data[i] - data[i-lag], and an EMA with α = 2/(period+1)
// is run over d. The EMA is seeded at index period-1 with the mean of the
// de-lagged values available by then (d[lag..period-1]).
func ZLEMA(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), ZLEMAWarmUp(period)) {
		return core.Empty(), nil
	}

	lag := ZLEMALag(period)
	// delagged[j] corresponds to data[j+lag].
	delagged := make([]float64, len(data)-lag)
	for j := range delagged {
		delagged[j] = 2*data[j+lag] - data[j]
	}
	seedWindow := delagged[:period-lag]
	seed := floats.Sum(seedWindow) / float64(len(seedWindow))
	return exponential(delagged[period-1-lag:], seed, EMASmoothingFactor(period)), nil
}
