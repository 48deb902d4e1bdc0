package trend

import "github.com/evdnx/taseries/indicator/core"

// WMAWarmUp returns the number of leading inputs WMA consumes before its
// first value.
func WMAWarmUp(period int) int { return period - 1 }

// WMA returns the linearly weighted moving average of data. Inside each
// window the oldest value has weight 1 and the newest weight period; the sum
// is normalised by period·(period+1)/2.
func WMA(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if core.Insufficient(len(data), WMAWarmUp(period)) {
		return core.Empty(), nil
	}
	return wma(data, period), nil
}

// wma slides the weighted and plain window sums in O(1) per step:
//
//	W' = W - S + period·x_new
//	S' = S - x_old + x_new
//
// Non-finite inputs enter both sums as zero and any window holding one is
// recomputed directly. Assumes len(data) >= period >= 1.
func wma(data []float64, period int) []float64 {
	p := float64(period)
	denom := p * (p + 1) / 2
	clean := func(v float64) float64 {
		if core.IsFinite(v) {
			return v
		}
		return 0
	}

	out := make([]float64, 0, len(data)-period+1)
	var weighted, plain core.KahanSum
	nonFinite := 0
	for i, v := range data {
		x := clean(v)
		if !core.IsFinite(v) {
			nonFinite++
		}
		if i < period {
			weighted.Add(float64(i+1) * x)
			plain.Add(x)
		} else {
			old := data[i-period]
			weighted.Add(p * x)
			weighted.SubSum(plain)
			plain.Add(x)
			plain.Sub(clean(old))
			if !core.IsFinite(old) {
				nonFinite--
			}
		}
		if i < period-1 {
			continue
		}
		if nonFinite == 0 {
			out = append(out, weighted.Value()/denom)
			continue
		}
		direct := 0.0
		for k := 0; k < period; k++ {
			direct += float64(k+1) * data[i-period+1+k]
		}
		out = append(out, direct/denom)
	}
	return out
}
