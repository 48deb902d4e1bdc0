package momentum

import (
	"math"

	"github.com/evdnx/taseries/indicator/core"
)

// CMOWarmUp returns the number of leading inputs CMO consumes before its
// first value.
func CMOWarmUp(period int) int { return period }

// CMO returns the Chande Momentum Oscillator,
//
//	100 · (ΣG − ΣL) / (ΣG + ΣL)
//
// over the trailing period changes. A window without movement yields 0.
func CMO(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), CMOWarmUp(period)) {
		return core.Empty(), nil
	}

	changes := make([]float64, len(data)-1)
	for i := 1; i < len(data); i++ {
		changes[i-1] = data[i] - data[i-1]
	}
	gains := core.RollingSumFunc(changes, period, func(v float64) float64 { return math.Max(v, 0) })
	losses := core.RollingSumFunc(changes, period, func(v float64) float64 { return math.Max(-v, 0) })

	out := make([]float64, len(gains))
	for i := range out {
		total := gains[i] + losses[i]
		if total == 0 {
			continue
		}
		out[i] = 100 * (gains[i] - losses[i]) / total
	}
	return out, nil
}
