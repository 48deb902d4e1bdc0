package momentum

import (
	"math"

	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/volatility"
)

const DefaultRSIPeriod = 14

// RSIWarmUp returns the number of leading inputs RSI consumes before its
// first value. The first change needs a previous close, so the seed window of
// period changes spans period+1 inputs.
func RSIWarmUp(period int) int { return period }

// RSI calculates the Relative Strength Index following J. Wilder's
// formulation:
//   - gains and losses of consecutive closes are smoothed with Wilder's
//     moving average, seeded by the simple average of the first period
//     changes;
//   - RSI = 100·G/(G+L), clamped to [0, 100], and 50 when there was no
//     movement at all.
//
// With round set every value is rounded to two decimals, half away from zero.
func RSI(data []float64, period int, round bool) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), RSIWarmUp(period)) {
		return core.Empty(), nil
	}
	out, err := rsi(data, period)
	if err != nil {
		return nil, err
	}
	if round {
		return core.RoundAll(out, core.DefaultDecimals), nil
	}
	return out, nil
}

// rsi assumes len(data) > period >= 1.
func rsi(data []float64, period int) ([]float64, error) {
	gains := make([]float64, len(data)-1)
	losses := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		change := data[i] - data[i-1]
		// math.Max keeps a NaN change as NaN in both legs.
		gains[i-1] = math.Max(change, 0)
		losses[i-1] = math.Max(-change, 0)
	}

	avgGain, err := volatility.Wilders(gains, period)
	if err != nil {
		return nil, err
	}
	avgLoss, err := volatility.Wilders(losses, period)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(avgGain))
	for i := range out {
		out[i] = rsiValue(avgGain[i], avgLoss[i])
	}
	return out, nil
}

func rsiValue(gain, loss float64) float64 {
	total := gain + loss
	if total == 0 {
		return 50
	}
	return core.Clamp(100*gain/total, 0, 100)
}
