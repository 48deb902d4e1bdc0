package taseries

import (
	"context"
	"io"
	"time"

	"github.com/evdnx/taseries/config"
	"github.com/evdnx/taseries/indicator"
	"github.com/evdnx/taseries/series"
	"github.com/evdnx/taseries/suite"
)

// ---- Errors ----
var (
	ErrInvalidParams     = indicator.ErrInvalidParams
	ErrMismatchedLengths = indicator.ErrMismatchedLengths
	ErrUnknownIndicator  = suite.ErrUnknownIndicator
	ErrUnknownFormat     = series.ErrUnknownFormat
	ErrInvalidConfig     = config.ErrInvalidConfig
)

// ---- Shared data helpers ----
type PlotData = indicator.PlotData

func GenerateTimestamps(startTime int64, count int, interval int64) []int64 {
	return indicator.GenerateTimestamps(startTime, count, interval)
}

func FormatPlotDataJSON(data []PlotData) (string, error) {
	return indicator.FormatPlotDataJSON(data)
}

func FormatPlotDataCSV(data []PlotData) (string, error) {
	return indicator.FormatPlotDataCSV(data)
}

// ---- Output formats & labeled series ----
type (
	Format = series.Format
	Series = series.Series
	Column = series.Column
	Table  = series.Table
	Bar    = series.Bar
	Frame  = series.Frame
)

const (
	FormatArray   = series.FormatArray
	FormatLabeled = series.FormatLabeled
)

func ParseFormat(s string) (Format, error) { return series.ParseFormat(s) }

func NewFrame(index []time.Time, open, high, low, close, volume []float64) (Frame, error) {
	return series.NewFrame(index, open, high, low, close, volume)
}

func FrameFromBars(bars []Bar) Frame { return series.FrameFromBars(bars) }

func Label(name string, index []time.Time, values []float64) Series {
	return series.Label(name, index, values)
}

func Bundle(index []time.Time, columns ...Column) Table { return series.Bundle(index, columns...) }

// ---- Configuration ----
type (
	IndicatorConfig = config.IndicatorConfig
	Request         = config.Request
	Document        = config.Document
)

func DefaultConfig() IndicatorConfig { return config.DefaultConfig() }

func LoadConfig(r io.Reader) (Document, error) { return config.Load(r) }

func LoadConfigFile(path string) (Document, error) { return config.LoadFile(path) }

// ---- Batch evaluation ----
type (
	Suite     = suite.Suite
	Registry  = suite.Registry
	Evaluator = suite.Evaluator
	Output    = suite.Output
)

func NewSuite(cfg IndicatorConfig) (*Suite, error) { return suite.New(cfg) }

func NewRegistry() *Registry { return suite.NewRegistry() }

func Evaluate(ctx context.Context, frame Frame, requests []Request) ([]Output, error) {
	return suite.Evaluate(ctx, frame, requests)
}

// ---- Moving averages ----
func SMA(data []float64, period int) ([]float64, error)   { return indicator.SMA(data, period) }
func EMA(data []float64, period int) ([]float64, error)   { return indicator.EMA(data, period) }
func WMA(data []float64, period int) ([]float64, error)   { return indicator.WMA(data, period) }
func ZLEMA(data []float64, period int) ([]float64, error) { return indicator.ZLEMA(data, period) }
func HMA(data []float64, period int) ([]float64, error)   { return indicator.HMA(data, period) }
func KAMA(data []float64, period int) ([]float64, error)  { return indicator.KAMA(data, period) }
func TRIMA(data []float64, period int) ([]float64, error) { return indicator.TRIMA(data, period) }

func KAMAWithParams(data []float64, period, fast, slow int) ([]float64, error) {
	return indicator.KAMAWithParams(data, period, fast, slow)
}

func VWMA(price, volume []float64, period int) ([]float64, error) {
	return indicator.VWMA(price, volume, period)
}

type MACDResult = indicator.MACDResult

func MACD(data []float64, short, long, signal int) (MACDResult, error) {
	return indicator.MACD(data, short, long, signal)
}

// ---- Oscillators ----
func RSI(data []float64, period int, round bool) ([]float64, error) {
	return indicator.RSI(data, period, round)
}

type StochRSIResult = indicator.StochRSIResult

func StochasticRSI(data []float64, period, smoothK, smoothD int) (StochRSIResult, error) {
	return indicator.StochasticRSI(data, period, smoothK, smoothD)
}

func AroonOscillator(high, low []float64, period int) ([]float64, error) {
	return indicator.AroonOscillator(high, low, period)
}

func CMO(data []float64, period int) ([]float64, error)      { return indicator.CMO(data, period) }
func APO(data []float64, short, long int) ([]float64, error) { return indicator.APO(data, short, long) }
func PPO(data []float64, short, long int) ([]float64, error) { return indicator.PPO(data, short, long) }

type StochasticResult = indicator.StochasticResult

func StochasticOscillator(high, low, close []float64, kPeriod, kSlowing, dPeriod int) (StochasticResult, error) {
	return indicator.StochasticOscillator(high, low, close, kPeriod, kSlowing, dPeriod)
}

func CCI(high, low, close []float64, period int) ([]float64, error) {
	return indicator.CCI(high, low, close, period)
}

// ---- Volatility ----
type BollingerResult = indicator.BollingerResult

func BollingerBands(data []float64, period int, multiplier float64) (BollingerResult, error) {
	return indicator.BollingerBands(data, period, multiplier)
}

func TrueRange(high, low, close []float64) ([]float64, error) {
	return indicator.TrueRange(high, low, close)
}

func ATR(high, low, close []float64, period int) ([]float64, error) {
	return indicator.ATR(high, low, close, period)
}

func Wilders(data []float64, period int) ([]float64, error) { return indicator.Wilders(data, period) }

func WillR(high, low, close []float64, period int) ([]float64, error) {
	return indicator.WillR(high, low, close, period)
}

func WAD(high, low, close []float64) ([]float64, error) { return indicator.WAD(high, low, close) }

// ---- Volume ----
func VWAP(high, low, close, volume []float64) ([]float64, error) {
	return indicator.VWAP(high, low, close, volume)
}

func MFI(high, low, close, volume []float64, period int) ([]float64, error) {
	return indicator.MFI(high, low, close, volume, period)
}

// ---- Rolling statistics ----
func StdDev(data []float64, period int) ([]float64, error) { return indicator.StdDev(data, period) }
func Var(data []float64, period int) ([]float64, error)    { return indicator.Var(data, period) }
func StdErr(data []float64, period int) ([]float64, error) { return indicator.StdErr(data, period) }
func Min(data []float64, period int) ([]float64, error)    { return indicator.Min(data, period) }
func Max(data []float64, period int) ([]float64, error)    { return indicator.Max(data, period) }
func Sum(data []float64, period int) ([]float64, error)    { return indicator.Sum(data, period) }
