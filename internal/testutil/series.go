// Package testutil builds deterministic price series for the indicator tests
// and benchmarks.
package testutil

import (
	"math"
	"math/rand"
)

// Closes returns n deterministic, non-constant closing prices oscillating
// around a slow upward drift.
func Closes(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i)
		out[i] = 100 + 10*math.Sin(x/7) + 0.3*x + float64(i%5)*0.7
	}
	return out
}

// OHLCV returns n aligned bars built around Closes(n). Highs are always at or
// above the close and lows at or below it.
func OHLCV(n int) (high, low, close, volume []float64) {
	close = Closes(n)
	high = make([]float64, n)
	low = make([]float64, n)
	volume = make([]float64, n)
	for i, c := range close {
		high[i] = c + 1 + float64(i%3)*0.5
		low[i] = c - 1 - float64(i%4)*0.25
		volume[i] = 1000 + float64((i*37)%11)*150
	}
	return high, low, close, volume
}

// RandomWalk returns n prices from a seeded random walk, used by benchmarks.
func RandomWalk(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	price := 100.0
	for i := range out {
		price += r.NormFloat64()
		if price < 1 {
			price = 1
		}
		out[i] = price
	}
	return out
}

// Ramp returns 1, 2, ..., n.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// Constant returns n copies of v.
func Constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
