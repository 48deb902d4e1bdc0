package momentum

import (
	"math"

	"github.com/evdnx/taseries/indicator/core"
)

const DefaultAroonPeriod = 14

// AroonWarmUp returns the number of leading bars the Aroon oscillator
// consumes before its first value. Each window spans period+1 bars.
func AroonWarmUp(period int) int { return period }

// AroonOscillator returns Aroon Up minus Aroon Down, where
//
//	up   = 100 · (period − bars since the highest high) / period
//	down = 100 · (period − bars since the lowest low) / period
//
// over a window of period+1 bars. Ties resolve to the most recent bar.
func AroonOscillator(high, low []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := core.SameLength(high, low); err != nil {
		return nil, err
	}
	if core.Insufficient(len(high), AroonWarmUp(period)) {
		return core.Empty(), nil
	}

	sinceHigh := core.RollingArgMax(high, period+1)
	sinceLow := core.RollingArgMin(low, period+1)
	p := float64(period)
	out := make([]float64, len(sinceHigh))
	for i := range out {
		if sinceHigh[i] < 0 || sinceLow[i] < 0 {
			out[i] = math.NaN()
			continue
		}
		up := 100 * (p - float64(sinceHigh[i])) / p
		down := 100 * (p - float64(sinceLow[i])) / p
		out[i] = up - down
	}
	return out, nil
}
