package volume

import "github.com/evdnx/taseries/indicator/core"

// VWAP returns the cumulative Volume Weighted Average Price of the typical
// price (H+L+C)/3. It has no warm-up: output i covers bars 0..i. Until any
// volume has traded the value is NaN.
func VWAP(high, low, close, volume []float64) ([]float64, error) {
	if err := core.SameLength(high, low, close, volume); err != nil {
		return nil, err
	}
	out := make([]float64, len(close))
	var cumPV, cumVol core.KahanSum
	for i := range close {
		typicalPrice := (high[i] + low[i] + close[i]) / 3
		cumPV.Add(typicalPrice * volume[i])
		cumVol.Add(volume[i])
		out[i] = cumPV.Value() / cumVol.Value()
	}
	return out, nil
}
