package volume

import "github.com/evdnx/taseries/indicator/core"

// VWMAWarmUp returns the number of leading inputs VWMA consumes before its
// first value.
func VWMAWarmUp(period int) int { return period - 1 }

// VWMA returns the volume weighted moving average Σ(price·volume)/Σvolume
// over every trailing window. A window whose volumes sum to zero yields NaN.
func VWMA(price, volume []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := core.SameLength(price, volume); err != nil {
		return nil, err
	}
	if core.Insufficient(len(price), VWMAWarmUp(period)) {
		return core.Empty(), nil
	}

	weighted := make([]float64, len(price))
	for i := range price {
		weighted[i] = price[i] * volume[i]
	}
	num := core.RollingSum(weighted, period)
	den := core.RollingSum(volume, period)
	for i := range num {
		num[i] /= den[i]
	}
	return num, nil
}
