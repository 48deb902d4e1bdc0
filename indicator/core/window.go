package core

import "math"

// KahanSum is a compensated running sum using Neumaier's variant of Kahan
// summation, which keeps the low-order bits of whichever operand is smaller.
// Values can be added and removed so a fixed-size window slides in O(1), and
// a large value leaving the window does not discard the smaller values still
// in it.
type KahanSum struct {
	sum  float64
	comp float64
}

// Add adds v to the running sum.
func (k *KahanSum) Add(v float64) {
	t := k.sum + v
	if math.Abs(k.sum) >= math.Abs(v) {
		k.comp += (k.sum - t) + v
	} else {
		k.comp += (v - t) + k.sum
	}
	k.sum = t
}

// Sub removes v from the running sum.
func (k *KahanSum) Sub(v float64) { k.Add(-v) }

// SubSum removes another running sum, both of its parts, from k.
func (k *KahanSum) SubSum(o KahanSum) {
	k.Add(-o.sum)
	k.Add(-o.comp)
}

// Value returns the current sum.
func (k *KahanSum) Value() float64 { return k.sum + k.comp }

// RollingSum returns the sum of every complete trailing window of length
// period. The result has len(data)-period+1 entries.
func RollingSum(data []float64, period int) []float64 {
	return RollingSumFunc(data, period, nil)
}

// RollingSumFunc is RollingSum over f(x) instead of x. A nil f is the identity.
//
// Non-finite terms are kept out of the compensated sum; a window holding one
// is summed directly so the output follows plain IEEE arithmetic for that
// window only.
func RollingSumFunc(data []float64, period int, f func(float64) float64) []float64 {
	if period < 1 || len(data) < period {
		return Empty()
	}
	term := func(i int) float64 {
		if f == nil {
			return data[i]
		}
		return f(data[i])
	}

	out := make([]float64, 0, len(data)-period+1)
	var (
		sum       KahanSum
		nonFinite int
	)
	for i := range data {
		v := term(i)
		if IsFinite(v) {
			sum.Add(v)
		} else {
			nonFinite++
		}
		if i >= period {
			old := term(i - period)
			if IsFinite(old) {
				sum.Sub(old)
			} else {
				nonFinite--
			}
		}
		if i < period-1 {
			continue
		}
		if nonFinite == 0 {
			out = append(out, sum.Value())
			continue
		}
		direct := 0.0
		for j := i - period + 1; j <= i; j++ {
			direct += term(j)
		}
		out = append(out, direct)
	}
	return out
}

// RollingMin returns the minimum of every complete trailing window.
func RollingMin(data []float64, period int) []float64 {
	return rollingExtreme(data, period, func(a, b float64) bool { return a <= b })
}

// RollingMax returns the maximum of every complete trailing window.
func RollingMax(data []float64, period int) []float64 {
	return rollingExtreme(data, period, func(a, b float64) bool { return a >= b })
}

// RollingArgMax returns, for every complete trailing window, how many bars ago
// the maximum occurred. Ties resolve to the most recent bar.
func RollingArgMax(data []float64, period int) []int {
	return rollingExtremeIdx(data, period, func(a, b float64) bool { return a >= b })
}

// RollingArgMin is RollingArgMax for the minimum.
func RollingArgMin(data []float64, period int) []int {
	return rollingExtremeIdx(data, period, func(a, b float64) bool { return a <= b })
}

// rollingExtreme keeps a monotonic deque of indices. better(a, b) reports
// whether the newer value a dominates the older b. Windows holding a NaN
// yield NaN.
func rollingExtreme(data []float64, period int, better func(a, b float64) bool) []float64 {
	idx := rollingExtremeIdx(data, period, better)
	out := make([]float64, len(idx))
	for i, back := range idx {
		if back < 0 {
			out[i] = math.NaN()
			continue
		}
		end := i + period - 1
		out[i] = data[end-back]
	}
	return out
}

// rollingExtremeIdx returns bars-ago offsets of the extreme value, or -1 when
// the window holds a NaN.
func rollingExtremeIdx(data []float64, period int, better func(a, b float64) bool) []int {
	if period < 1 || len(data) < period {
		return []int{}
	}
	out := make([]int, 0, len(data)-period+1)
	deque := make([]int, 0, period)
	lastNaN := -1
	for i, v := range data {
		if len(deque) > 0 && deque[0] <= i-period {
			deque = deque[1:]
		}
		if math.IsNaN(v) {
			lastNaN = i
		} else {
			for len(deque) > 0 && better(v, data[deque[len(deque)-1]]) {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, i)
		}
		if i < period-1 {
			continue
		}
		if lastNaN > i-period || len(deque) == 0 {
			out = append(out, -1)
			continue
		}
		out = append(out, i-deque[0])
	}
	return out
}
