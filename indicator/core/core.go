package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// -----------------------------------------------------------------------------
// Sentinel errors – exported so callers can compare with errors.Is()
// -----------------------------------------------------------------------------
var (
	// ErrInvalidParams is returned when a period, multiplier or other scalar
	// parameter is outside its valid range.
	ErrInvalidParams = errors.New("invalid indicator parameters")
	// ErrMismatchedLengths is returned when inputs that must be index aligned
	// (high/low/close/volume) have different lengths.
	ErrMismatchedLengths = errors.New("input series lengths differ")
)

// -----------------------------------------------------------------------------
// Parameter and input validation
// -----------------------------------------------------------------------------

// ValidatePeriod checks that period is at least min.
func ValidatePeriod(name string, period, min int) error {
	if period < min {
		return fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalidParams, name, min, period)
	}
	return nil
}

// ValidateShortLong checks a short/long period pair as used by MACD, APO and PPO.
func ValidateShortLong(short, long int) error {
	if err := ValidatePeriod("short period", short, 1); err != nil {
		return err
	}
	if err := ValidatePeriod("long period", long, 1); err != nil {
		return err
	}
	if short >= long {
		return fmt.Errorf("%w: short period (%d) must be less than long period (%d)", ErrInvalidParams, short, long)
	}
	return nil
}

// SameLength fails fast when the supplied series are not index aligned.
func SameLength(series ...[]float64) error {
	if len(series) < 2 {
		return nil
	}
	n := len(series[0])
	for _, s := range series[1:] {
		if len(s) != n {
			lens := make([]string, len(series))
			for i, x := range series {
				lens[i] = fmt.Sprintf("%d", len(x))
			}
			return fmt.Errorf("%w: got lengths [%s]", ErrMismatchedLengths, strings.Join(lens, ", "))
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Warm-up trimming
// -----------------------------------------------------------------------------

// Empty returns a non-nil, zero-length result.
func Empty() []float64 { return []float64{} }

// Trim drops the first warmUp entries of values. When nothing is left the
// result is empty rather than nil.
func Trim(values []float64, warmUp int) []float64 {
	if warmUp >= len(values) {
		return Empty()
	}
	if warmUp <= 0 {
		return values
	}
	return values[warmUp:]
}

// Insufficient reports whether n input points are too few to produce a single
// output for an indicator with the given warm-up.
func Insufficient(n, warmUp int) bool {
	return n <= warmUp
}

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// KeepLast returns the last n elements of a slice (or the whole slice if it is
// shorter).
func KeepLast[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// CopySlice returns a defensive copy of src.
func CopySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	if min == max {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
