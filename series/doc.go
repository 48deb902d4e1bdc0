// Package series carries indicator inputs and outputs: OHLCV frames, the
// output Format switch, and labeled series and tables aligned to the tail of
// an input index.
package series
