package core

import "github.com/shopspring/decimal"

// DefaultDecimals is the precision used by indicators that offer rounding.
const DefaultDecimals = 2

// Round rounds v to the given number of decimal places, half away from zero.
// Rounding happens in decimal space so 1.005 becomes 1.01 rather than the
// binary-float 1.00. Non-finite values are returned unchanged.
func Round(v float64, places int32) float64 {
	if !IsFinite(v) {
		return v
	}
	r, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return r
}

// RoundAll returns a rounded copy of values.
func RoundAll(values []float64, places int32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Round(v, places)
	}
	return out
}
