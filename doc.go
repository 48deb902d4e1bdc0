// Package taseries computes technical-analysis indicators over whole price
// series at once: moving averages, oscillators, volatility bands and rolling
// statistics.
//
// Every indicator drops its warm-up. Output i of an indicator with warm-up w
// belongs to input i+w, and each indicator exports a matching WarmUp function
// in its sub-package. Inputs that must be aligned fail fast with
// ErrMismatchedLengths; too little data yields an empty result and no error.
//
// Results come back as plain slices. Label and Bundle attach the tail of an
// input time index for callers that want labeled output, and Evaluate runs a
// batch of named requests against one Frame with either Format.
package taseries
