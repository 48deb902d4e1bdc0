// Package statistics implements trailing-window statistics: sample standard
// deviation, variance and standard error, plus minimum, maximum and sum.
//
// Every output i describes the window data[i : i+period]; incomplete leading
// windows are dropped.
package statistics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/evdnx/taseries/indicator/core"
)

// WarmUp returns the number of leading inputs every rolling statistic
// consumes before its first value.
func WarmUp(period int) int { return period - 1 }

// Sum returns the sum of every trailing window.
func Sum(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return core.RollingSum(data, period), nil
}

// Min returns the minimum of every trailing window.
func Min(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return core.RollingMin(data, period), nil
}

// Max returns the maximum of every trailing window.
func Max(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return core.RollingMax(data, period), nil
}

// Var returns the sample variance (n-1 denominator) of every trailing window.
func Var(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 2); err != nil {
		return nil, err
	}
	return variance(data, period, 1), nil
}

// StdDev returns the sample standard deviation of every trailing window.
func StdDev(data []float64, period int) ([]float64, error) {
	v, err := Var(data, period)
	if err != nil {
		return nil, err
	}
	for i := range v {
		v[i] = math.Sqrt(v[i])
	}
	return v, nil
}

// StdErr returns the standard error of the mean, stddev/√period, of every
// trailing window.
func StdErr(data []float64, period int) ([]float64, error) {
	s, err := StdDev(data, period)
	if err != nil {
		return nil, err
	}
	root := math.Sqrt(float64(period))
	for i := range s {
		s[i] /= root
	}
	return s, nil
}

// PopulationStdDev returns the population standard deviation (n denominator)
// of every trailing window. Bollinger Bands use this form.
func PopulationStdDev(data []float64, period int) ([]float64, error) {
	if err := core.ValidatePeriod("period", period, 1); err != nil {
		return nil, err
	}
	v := variance(data, period, 0)
	for i := range v {
		v[i] = math.Sqrt(v[i])
	}
	return v, nil
}

// variance returns Σ(x-mean)² / (period-ddof) for every trailing window. Each
// window is measured around its own mean with the corrected two-pass
// algorithm, so a large value leaving the window cannot cancel the precision
// of the windows after it. A window holding a non-finite value yields NaN.
func variance(data []float64, period, ddof int) []float64 {
	if len(data) < period {
		return core.Empty()
	}
	n := float64(period)
	out := make([]float64, len(data)-period+1)
	for i := range out {
		window := data[i : i+period]
		if period == 1 {
			out[i] = window[0] - window[0]
			continue
		}
		v := stat.Variance(window, nil)
		if ddof == 0 {
			v *= (n - 1) / n
		}
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}
