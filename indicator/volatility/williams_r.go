package volatility

import "github.com/evdnx/taseries/indicator/core"

// WillRWarmUp returns the number of leading bars Williams %R consumes before
// its first value.
func WillRWarmUp(period int) int { return period - 1 }

// WillR returns Williams %R:
//
//	−100 · (highest high − close) / (highest high − lowest low)
//
// over the trailing period. A window with no range yields 0.
func WillR(high, low, close []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := core.SameLength(high, low, close); err != nil {
		return nil, err
	}
	if core.Insufficient(len(close), WillRWarmUp(period)) {
		return core.Empty(), nil
	}

	hh := core.RollingMax(high, period)
	ll := core.RollingMin(low, period)
	out := make([]float64, len(hh))
	for i := range out {
		c := close[i+period-1]
		rng := hh[i] - ll[i]
		if rng == 0 {
			out[i] = 0
			continue
		}
		out[i] = -100 * (hh[i] - c) / rng
	}
	return out, nil
}
