package momentum

import (
	"math"

	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/trend"
)

const (
	DefaultCCIPeriod = 20
	cciConstant      = 0.015
)

// CCIWarmUp returns the number of leading bars CCI consumes before its first
// value.
func CCIWarmUp(period int) int { return period - 1 }

// CCI implements the Commodity Channel Index. It uses the typical price
// (H+L+C)/3, a simple moving average of typical prices and the mean
// deviation around that average. A window with no deviation yields 0.
func CCI(high, low, close []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := core.SameLength(high, low, close); err != nil {
		return nil, err
	}
	if core.Insufficient(len(close), CCIWarmUp(period)) {
		return core.Empty(), nil
	}

	typical := make([]float64, len(close))
	for i := range typical {
		typical[i] = (high[i] + low[i] + close[i]) / 3
	}
	ma, err := trend.SMA(typical, period)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(ma))
	for i, mean := range ma {
		window := typical[i : i+period]
		var devSum float64
		for _, v := range window {
			devSum += math.Abs(v - mean)
		}
		meanDev := devSum / float64(period)
		if meanDev == 0 {
			continue
		}
		out[i] = (window[period-1] - mean) / (cciConstant * meanDev)
	}
	return out, nil
}
