package trend

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/evdnx/taseries/indicator/core"
)

// HMASubPeriods returns the half and square-root periods used by HMA. Both are
// truncated to integers and floored at 1.
func HMASubPeriods(period int) (half, sqrt int) {
	half = period / 2
	if half < 1 {
		half = 1
	}
	sqrt = int(math.Sqrt(float64(period)))
	if sqrt < 1 {
		sqrt = 1
	}
	return half, sqrt
}

// HMAWarmUp returns the number of leading inputs HMA consumes before its
// first value.
func HMAWarmUp(period int) int {
	_, sqrt := HMASubPeriods(period)
	return period - 1 + sqrt - 1
}

// HMA returns the Hull moving average:
//
//	WMA(2·WMA(data, period/2) − WMA(data, period), √period)
func HMA(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), HMAWarmUp(period)) {
		return core.Empty(), nil
	}

	half, sqrt := HMASubPeriods(period)
	wmaFull := wma(data, period)
	// Align the half-period WMA with the full one (it starts period-half
	// positions earlier).
	wmaHalf := wma(data, half)[period-half:]

	raw := make([]float64, len(wmaFull))
	copy(raw, wmaHalf)
	floats.Scale(2, raw)
	floats.Sub(raw, wmaFull)
	return wma(raw, sqrt), nil
}
