package momentum

import (
	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/trend"
)

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACDResult holds the MACD line, the signal line and the histogram, all
// aligned to the signal line's range.
type MACDResult struct {
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// Len returns the number of aligned points.
func (r MACDResult) Len() int { return len(r.Signal) }

// MACDWarmUp returns the number of leading inputs MACD consumes before its
// first aligned value.
func MACDWarmUp(long, signal int) int {
	return trend.EMAWarmUp(long) + trend.EMAWarmUp(signal)
}

// MACD implements the Moving Average Convergence Divergence indicator.
// The MACD line is EMA(short) − EMA(long), the signal line is an EMA of the
// MACD line and the histogram is MACD − signal.
func MACD(data []float64, short, long, signal int) (MACDResult, error) {
	if err := core.ValidateShortLong(short, long); err != nil {
		return MACDResult{}, err
	}
	if err := core.ValidatePeriod("signal period", signal, 1); err != nil {
		return MACDResult{}, err
	}
	if core.Insufficient(len(data), MACDWarmUp(long, signal)) {
		return MACDResult{MACD: core.Empty(), Signal: core.Empty(), Histogram: core.Empty()}, nil
	}

	line, err := APO(data, short, long)
	if err != nil {
		return MACDResult{}, err
	}
	sig, err := trend.EMA(line, signal)
	if err != nil {
		return MACDResult{}, err
	}
	line = core.KeepLast(line, len(sig))
	hist := make([]float64, len(sig))
	for i := range hist {
		hist[i] = line[i] - sig[i]
	}
	return MACDResult{MACD: line, Signal: sig, Histogram: hist}, nil
}
