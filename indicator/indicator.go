package indicator

import (
	"github.com/evdnx/taseries/indicator/core"
	"github.com/evdnx/taseries/indicator/momentum"
	"github.com/evdnx/taseries/indicator/statistics"
	"github.com/evdnx/taseries/indicator/trend"
	"github.com/evdnx/taseries/indicator/volatility"
	"github.com/evdnx/taseries/indicator/volume"
)

// ---- Errors ----
var (
	ErrInvalidParams     = core.ErrInvalidParams
	ErrMismatchedLengths = core.ErrMismatchedLengths
)

// ---- Shared data helpers ----
type PlotData = core.PlotData

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return core.GenerateTimestamps(startTime, count, interval)
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return core.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return core.FormatPlotDataCSV(data)
}

func Round(v float64, places int32) float64 { return core.Round(v, places) }

// ---- Moving averages ----
func SMA(data []float64, period int) ([]float64, error)   { return trend.SMA(data, period) }
func EMA(data []float64, period int) ([]float64, error)   { return trend.EMA(data, period) }
func WMA(data []float64, period int) ([]float64, error)   { return trend.WMA(data, period) }
func ZLEMA(data []float64, period int) ([]float64, error) { return trend.ZLEMA(data, period) }
func HMA(data []float64, period int) ([]float64, error)   { return trend.HMA(data, period) }
func KAMA(data []float64, period int) ([]float64, error)  { return trend.KAMA(data, period) }
func TRIMA(data []float64, period int) ([]float64, error) { return trend.TRIMA(data, period) }

func KAMAWithParams(data []float64, period, fast, slow int) ([]float64, error) {
	return trend.KAMAWithParams(data, period, fast, slow)
}

func VWMA(price, vol []float64, period int) ([]float64, error) {
	return volume.VWMA(price, vol, period)
}

type MACDResult = momentum.MACDResult

func MACD(data []float64, short, long, signal int) (MACDResult, error) {
	return momentum.MACD(data, short, long, signal)
}

// ---- Oscillators ----
func RSI(data []float64, period int, round bool) ([]float64, error) {
	return momentum.RSI(data, period, round)
}

type StochRSIResult = momentum.StochRSIResult

func StochasticRSI(data []float64, period, smoothK, smoothD int) (StochRSIResult, error) {
	return momentum.StochasticRSI(data, period, smoothK, smoothD)
}

func AroonOscillator(high, low []float64, period int) ([]float64, error) {
	return momentum.AroonOscillator(high, low, period)
}

func CMO(data []float64, period int) ([]float64, error)      { return momentum.CMO(data, period) }
func APO(data []float64, short, long int) ([]float64, error) { return momentum.APO(data, short, long) }
func PPO(data []float64, short, long int) ([]float64, error) { return momentum.PPO(data, short, long) }

type StochasticResult = momentum.StochasticResult

func StochasticOscillator(high, low, close []float64, kPeriod, kSlowing, dPeriod int) (StochasticResult, error) {
	return momentum.StochasticOscillator(high, low, close, kPeriod, kSlowing, dPeriod)
}

func CCI(high, low, close []float64, period int) ([]float64, error) {
	return momentum.CCI(high, low, close, period)
}

// ---- Volatility ----
type BollingerResult = volatility.BollingerResult

func BollingerBands(data []float64, period int, multiplier float64) (BollingerResult, error) {
	return volatility.BollingerBands(data, period, multiplier)
}

func TrueRange(high, low, close []float64) ([]float64, error) {
	return volatility.TrueRange(high, low, close)
}

func ATR(high, low, close []float64, period int) ([]float64, error) {
	return volatility.ATR(high, low, close, period)
}

func Wilders(data []float64, period int) ([]float64, error) { return volatility.Wilders(data, period) }

func WillR(high, low, close []float64, period int) ([]float64, error) {
	return volatility.WillR(high, low, close, period)
}

func WAD(high, low, close []float64) ([]float64, error) { return volatility.WAD(high, low, close) }

// ---- Volume ----
func VWAP(high, low, close, vol []float64) ([]float64, error) {
	return volume.VWAP(high, low, close, vol)
}

func MFI(high, low, close, vol []float64, period int) ([]float64, error) {
	return volume.MFI(high, low, close, vol, period)
}

// ---- Rolling statistics ----
func StdDev(data []float64, period int) ([]float64, error) { return statistics.StdDev(data, period) }
func Var(data []float64, period int) ([]float64, error)    { return statistics.Var(data, period) }
func StdErr(data []float64, period int) ([]float64, error) { return statistics.StdErr(data, period) }
func Min(data []float64, period int) ([]float64, error)    { return statistics.Min(data, period) }
func Max(data []float64, period int) ([]float64, error)    { return statistics.Max(data, period) }
func Sum(data []float64, period int) ([]float64, error)    { return statistics.Sum(data, period) }
