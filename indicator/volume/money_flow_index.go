package volume

import "github.com/evdnx/taseries/indicator/core"

const DefaultMFIPeriod = 14

// MFIWarmUp returns the number of leading bars MFI consumes before its first
// value. Money flow needs a previous typical price.
func MFIWarmUp(period int) int { return period }

// MFI calculates the Money Flow Index over the trailing period bars:
//
//	flow = typical price · volume, positive when the typical price rose and
//	       negative when it fell
//	MFI  = 100 · Σpositive / (Σpositive + Σnegative)
//
// A window without flow in either direction yields 50.
func MFI(high, low, close, volume []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := core.SameLength(high, low, close, volume); err != nil {
		return nil, err
	}
	if core.Insufficient(len(close), MFIWarmUp(period)) {
		return core.Empty(), nil
	}

	positive := make([]float64, len(close)-1)
	negative := make([]float64, len(close)-1)
	prev := (high[0] + low[0] + close[0]) / 3
	for i := 1; i < len(close); i++ {
		typicalPrice := (high[i] + low[i] + close[i]) / 3
		flow := typicalPrice * volume[i]
		switch {
		case typicalPrice > prev:
			positive[i-1] = flow
		case typicalPrice < prev:
			negative[i-1] = flow
		}
		prev = typicalPrice
	}

	pos := core.RollingSum(positive, period)
	neg := core.RollingSum(negative, period)
	out := make([]float64, len(pos))
	for i := range out {
		total := pos[i] + neg[i]
		if total == 0 {
			out[i] = 50
			continue
		}
		out[i] = 100 * pos[i] / total
	}
	return out, nil
}
