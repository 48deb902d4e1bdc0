// Package momentum implements oscillators built on price changes and
// trailing extremes: RSI, stochastic RSI, the Aroon oscillator, CMO, APO,
// PPO, MACD, the stochastic oscillator and CCI.
package momentum
