package volatility

import (
	"math"

	"github.com/evdnx/taseries/indicator/core"
)

// WAD returns Williams Accumulation/Distribution, the running total of
//
//	close − min(low, prevClose)   when close rises
//	close − max(high, prevClose)  when close falls
//	0                             when close is unchanged
//
// The first bar has no previous close; it contributes 0 and is kept, so the
// output has the same length as the input.
func WAD(high, low, close []float64) ([]float64, error) {
	if err := core.SameLength(high, low, close); err != nil {
		return nil, err
	}
	out := make([]float64, len(close))
	var total core.KahanSum
	for i := 1; i < len(close); i++ {
		c, prev := close[i], close[i-1]
		switch {
		case c > prev:
			total.Add(c - math.Min(low[i], prev))
		case c < prev:
			total.Add(c - math.Max(high[i], prev))
		}
		out[i] = total.Value()
	}
	return out, nil
}
