// Package volatility implements Bollinger Bands, true range, average true
// range, Wilder's moving average, Williams %R and Williams
// Accumulation/Distribution.
package volatility
