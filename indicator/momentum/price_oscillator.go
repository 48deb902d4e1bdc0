package momentum

import (
	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/trend"
)

const (
	DefaultAPOShortPeriod = 12
	DefaultAPOLongPeriod  = 26
)

// PriceOscillatorWarmUp returns the number of leading inputs APO and PPO
// consume before their first value.
func PriceOscillatorWarmUp(long int) int { return trend.EMAWarmUp(long) }

// APO returns the absolute price oscillator EMA(short) − EMA(long).
func APO(data []float64, short, long int) ([]float64, error) {
	fast, slow, err := emaPair(data, short, long)
	if err != nil || len(slow) == 0 {
		return slow, err
	}
	out := make([]float64, len(slow))
	for i := range out {
		out[i] = fast[i] - slow[i]
	}
	return out, nil
}

// PPO returns the percentage price oscillator
// 100 · (EMA(short) − EMA(long)) / EMA(long). A zero long EMA follows float
// division semantics.
func PPO(data []float64, short, long int) ([]float64, error) {
	fast, slow, err := emaPair(data, short, long)
	if err != nil || len(slow) == 0 {
		return slow, err
	}
	out := make([]float64, len(slow))
	for i := range out {
		out[i] = 100 * (fast[i] - slow[i]) / slow[i]
	}
	return out, nil
}

// emaPair returns the short and long EMAs trimmed to the long EMA's range.
// An empty slow slice means there was not enough data.
func emaPair(data []float64, short, long int) (fast, slow []float64, err error) {
	if err := core.ValidateShortLong(short, long); err != nil {
		return nil, nil, err
	}
	if core.Insufficient(len(data), PriceOscillatorWarmUp(long)) {
		return core.Empty(), core.Empty(), nil
	}
	fast, err = trend.EMA(data, short)
	if err != nil {
		return nil, nil, err
	}
	slow, err = trend.EMA(data, long)
	if err != nil {
		return nil, nil, err
	}
	return core.KeepLast(fast, len(slow)), slow, nil
}
