package volatility

import (
	"fmt"

	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/statistics"
	"github.com/evdnx/taseries/indicator/trend"
)

const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// BollingerResult holds the three aligned bands.
type BollingerResult struct {
	Lower  []float64
	Middle []float64
	Upper  []float64
}

// Len returns the number of aligned points.
func (r BollingerResult) Len() int { return len(r.Middle) }

// BollingerWarmUp returns the number of leading inputs the bands consume
// before their first value.
func BollingerWarmUp(period int) int { return trend.SMAWarmUp(period) }

// BollingerBands returns middle = SMA(data, period) and
// upper/lower = middle ± multiplier·σ, where σ is the population standard
// deviation of the same window.
func BollingerBands(data []float64, period int, multiplier float64) (BollingerResult, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return BollingerResult{}, err
	}
	if multiplier < 0 {
		return BollingerResult{}, fmt.Errorf("%w: multiplier must not be negative, got %v", core.ErrInvalidParams, multiplier)
	}
	if core.Insufficient(len(data), BollingerWarmUp(period)) {
		return BollingerResult{Lower: core.Empty(), Middle: core.Empty(), Upper: core.Empty()}, nil
	}

	middle, err := trend.SMA(data, period)
	if err != nil {
		return BollingerResult{}, err
	}
	sigma, err := statistics.PopulationStdDev(data, period)
	if err != nil {
		return BollingerResult{}, err
	}

	res := BollingerResult{
		Lower:  make([]float64, len(middle)),
		Middle: middle,
		Upper:  make([]float64, len(middle)),
	}
	for i, m := range middle {
		band := multiplier * sigma[i]
		res.Upper[i] = m + band
		res.Lower[i] = m - band
	}
	return res, nil
}
