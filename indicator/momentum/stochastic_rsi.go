package momentum

import (
	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/trend"
)

const (
	DefaultStochRSIPeriod  = 14
	DefaultStochRSISmoothK = 3
	DefaultStochRSISmoothD = 3
)

// StochRSIResult holds the aligned RSI, %K and %D lines.
type StochRSIResult struct {
	RSI []float64
	K   []float64
	D   []float64
}

// Len returns the number of aligned points.
func (r StochRSIResult) Len() int { return len(r.D) }

// StochRSIWarmUp returns the number of leading inputs StochasticRSI consumes
// before its first value.
func StochRSIWarmUp(period, smoothK, smoothD int) int {
	return RSIWarmUp(period) + (period - 1) + (smoothK - 1) + (smoothD - 1)
}

// StochasticRSI applies the stochastic formula to RSI:
//
//	raw = (rsi − min(rsi)) / (max(rsi) − min(rsi))   over period, 0 on a flat window
//	%K  = 100 · SMA(raw, smoothK)
//	%D  = SMA(%K, smoothD)
//
// All three lines are trimmed to %D's range and rounded to two decimals.
func StochasticRSI(data []float64, period, smoothK, smoothD int) (StochRSIResult, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return StochRSIResult{}, err
	}
	if err := core.ValidatePeriod("smoothK", smoothK, 1); err != nil {
		return StochRSIResult{}, err
	}
	if err := core.ValidatePeriod("smoothD", smoothD, 1); err != nil {
		return StochRSIResult{}, err
	}
	if core.Insufficient(len(data), StochRSIWarmUp(period, smoothK, smoothD)) {
		return StochRSIResult{RSI: core.Empty(), K: core.Empty(), D: core.Empty()}, nil
	}

	r, err := rsi(data, period)
	if err != nil {
		return StochRSIResult{}, err
	}
	lowest := core.RollingMin(r, period)
	highest := core.RollingMax(r, period)
	raw := make([]float64, len(lowest))
	for i := range raw {
		raw[i] = stochastic(r[i+period-1], lowest[i], highest[i])
	}

	k, err := trend.SMA(raw, smoothK)
	if err != nil {
		return StochRSIResult{}, err
	}
	for i := range k {
		k[i] *= 100
	}
	d, err := trend.SMA(k, smoothD)
	if err != nil {
		return StochRSIResult{}, err
	}

	n := len(d)
	return StochRSIResult{
		RSI: core.RoundAll(core.KeepLast(r, n), core.DefaultDecimals),
		K:   core.RoundAll(core.KeepLast(k, n), core.DefaultDecimals),
		D:   core.RoundAll(d, core.DefaultDecimals),
	}, nil
}

// stochastic returns (v − lo)/(hi − lo), or 0 when the window has no range.
func stochastic(v, lo, hi float64) float64 {
	rng := hi - lo
	if rng == 0 {
		return 0
	}
	return (v - lo) / rng
}
