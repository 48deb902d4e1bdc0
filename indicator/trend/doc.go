// Package trend implements the moving-average family: SMA, EMA, WMA, ZLEMA,
// HMA, KAMA and TRIMA.
//
// Every function is a pure batch computation over a price slice. Leading
// positions that do not have a complete lookback window are dropped, so the
// output is shorter than the input by the indicator's warm-up (see the
// matching *WarmUp function). A period larger than the input yields an empty,
// non-nil slice and a nil error; an invalid period yields an error wrapping
// core.ErrInvalidParams.
package trend
