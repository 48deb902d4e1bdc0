package momentum

import (
	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/trend"
)

const (
	DefaultStochKPeriod = 14
	DefaultStochSlowing = 3
	DefaultStochDPeriod = 3
)

// StochasticResult holds the aligned %K and %D lines.
type StochasticResult struct {
	K []float64
	D []float64
}

// Len returns the number of aligned points.
func (r StochasticResult) Len() int { return len(r.D) }

// StochasticWarmUp returns the number of leading bars the stochastic
// oscillator consumes before its first aligned value.
func StochasticWarmUp(kPeriod, kSlowing, dPeriod int) int {
	return (kPeriod - 1) + (kSlowing - 1) + (dPeriod - 1)
}

// StochasticOscillator computes
//
//	raw %K = 100 · (close − lowest low) / (highest high − lowest low)
//	%K     = SMA(raw %K, kSlowing)
//	%D     = SMA(%K, dPeriod)
//
// A window without range gives a raw %K of 0. %K is trimmed to %D's range.
func StochasticOscillator(high, low, close []float64, kPeriod, kSlowing, dPeriod int) (StochasticResult, error) {
	if err := core.ValidatePeriod("kPeriod", kPeriod, 1); err != nil {
		return StochasticResult{}, err
	}
	if err := core.ValidatePeriod("kSlowing", kSlowing, 1); err != nil {
		return StochasticResult{}, err
	}
	if err := core.ValidatePeriod("dPeriod", dPeriod, 1); err != nil {
		return StochasticResult{}, err
	}
	if err := core.SameLength(high, low, close); err != nil {
		return StochasticResult{}, err
	}
	if core.Insufficient(len(close), StochasticWarmUp(kPeriod, kSlowing, dPeriod)) {
		return StochasticResult{K: core.Empty(), D: core.Empty()}, nil
	}

	highest := core.RollingMax(high, kPeriod)
	lowest := core.RollingMin(low, kPeriod)
	raw := make([]float64, len(highest))
	for i := range raw {
		raw[i] = 100 * stochastic(close[i+kPeriod-1], lowest[i], highest[i])
	}

	k, err := trend.SMA(raw, kSlowing)
	if err != nil {
		return StochasticResult{}, err
	}
	d, err := trend.SMA(k, dPeriod)
	if err != nil {
		return StochasticResult{}, err
	}
	return StochasticResult{K: core.KeepLast(k, len(d)), D: d}, nil
}
