package trend

import "github.com/evdnx/taseries/indicator/core"

// TRIMAWindows returns the two SMA windows TRIMA chains. Odd periods use
// (period+1)/2 twice; even periods use period/2+1 followed by period/2.
func TRIMAWindows(period int) (first, second int) {
	if period%2 == 1 {
		w := (period + 1) / 2
		return w, w
	}
	return period/2 + 1, period / 2
}

// TRIMAWarmUp returns the number of leading inputs TRIMA consumes before its
// first value. It always equals period-1.
func TRIMAWarmUp(period int) int {
	first, second := TRIMAWindows(period)
	return first - 1 + second - 1
}

// TRIMA returns the triangular moving average: an SMA of an SMA, which gives
// the centre of each window the highest weight.
func TRIMA(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), TRIMAWarmUp(period)) {
		return core.Empty(), nil
	}
	first, second := TRIMAWindows(period)
	return sma(sma(data, first), second), nil
}
