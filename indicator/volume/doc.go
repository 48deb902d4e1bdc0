// Package volume implements volume-weighted indicators: VWMA, VWAP and the
// Money Flow Index.
package volume
