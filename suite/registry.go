package suite

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/evdnx/taseries/config"
	"github.com/evdnx/taseries/indicator/momentum"
	"github.com/evdnx/taseries/indicator/statistics"
	"github.com/evdnx/taseries/indicator/trend"
	"github.com/evdnx/taseries/indicator/volatility"
	"github.com/evdnx/taseries/indicator/volume"
	"github.com/evdnx/taseries/series"
)

// ErrUnknownIndicator is returned for request names missing from the
// registry.
var ErrUnknownIndicator = errors.New("unknown indicator")

// Evaluator computes one indicator from a frame. It returns one column per
// output line, each trimmed of its warm-up.
type Evaluator func(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error)

// Registry maps indicator names to evaluators. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
}

// NewRegistry returns a registry holding every built-in indicator.
func NewRegistry() *Registry {
	r := &Registry{evaluators: make(map[string]Evaluator)}
	r.registerBuiltins()
	return r
}

// Register adds or replaces an evaluator.
func (r *Registry) Register(name string, e Evaluator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evaluators[name] = e
}

// Lookup returns the evaluator registered under name.
func (r *Registry) Lookup(name string) (Evaluator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}
	return e, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.evaluators))
	for name := range r.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) registerBuiltins() {
	// moving averages
	r.Register("sma", windowed(trend.SMA, periodDefault))
	r.Register("ema", windowed(trend.EMA, periodDefault))
	r.Register("wma", windowed(trend.WMA, periodDefault))
	r.Register("zlema", windowed(trend.ZLEMA, periodDefault))
	r.Register("hma", windowed(trend.HMA, periodDefault))
	r.Register("trima", windowed(trend.TRIMA, periodDefault))
	r.Register("kama", evalKAMA)
	r.Register("vwma", evalVWMA)
	r.Register("macd", evalMACD)

	// oscillators
	r.Register("rsi", evalRSI)
	r.Register("stochastic_rsi", evalStochRSI)
	r.Register("aroon_oscillator", evalAroon)
	r.Register("cmo", windowed(momentum.CMO, periodDefault))
	r.Register("apo", priceOscillator(momentum.APO))
	r.Register("ppo", priceOscillator(momentum.PPO))
	r.Register("stochastic_oscillator", evalStochastic)
	r.Register("cci", hlcWindowed(momentum.CCI, func(cfg config.IndicatorConfig) int { return momentum.DefaultCCIPeriod }))

	// volatility
	r.Register("bbands", evalBollinger)
	r.Register("true_range", evalTrueRange)
	r.Register("atr", hlcWindowed(volatility.ATR, periodDefault))
	r.Register("wilders", windowed(volatility.Wilders, periodDefault))
	r.Register("willr", hlcWindowed(volatility.WillR, periodDefault))
	r.Register("wad", evalWAD)

	// volume
	r.Register("vwap", evalVWAP)
	r.Register("mfi", evalMFI)

	// rolling statistics
	r.Register("stddev", windowed(statistics.StdDev, periodDefault))
	r.Register("var", windowed(statistics.Var, periodDefault))
	r.Register("stderr", windowed(statistics.StdErr, periodDefault))
	r.Register("min", windowed(statistics.Min, periodDefault))
	r.Register("max", windowed(statistics.Max, periodDefault))
	r.Register("sum", windowed(statistics.Sum, periodDefault))
}

func periodDefault(cfg config.IndicatorConfig) int { return cfg.Period }

// windowed adapts a single-input, single-period indicator.
func windowed(fn func([]float64, int) ([]float64, error), def func(config.IndicatorConfig) int) Evaluator {
	return func(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
		src, err := f.Column(req.Source)
		if err != nil {
			return nil, err
		}
		out, err := fn(src, req.Int("period", def(cfg)))
		if err != nil {
			return nil, err
		}
		return []series.Column{{Name: req.Label(), Values: out}}, nil
	}
}

// hlcWindowed adapts a high/low/close indicator with one period.
func hlcWindowed(fn func(high, low, close []float64, period int) ([]float64, error), def func(config.IndicatorConfig) int) Evaluator {
	return func(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
		high, low, close, err := hlc(f)
		if err != nil {
			return nil, err
		}
		out, err := fn(high, low, close, req.Int("period", def(cfg)))
		if err != nil {
			return nil, err
		}
		return []series.Column{{Name: req.Label(), Values: out}}, nil
	}
}

func priceOscillator(fn func([]float64, int, int) ([]float64, error)) Evaluator {
	return func(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
		src, err := f.Column(req.Source)
		if err != nil {
			return nil, err
		}
		out, err := fn(src, req.Int("short", cfg.MACDShort), req.Int("long", cfg.MACDLong))
		if err != nil {
			return nil, err
		}
		return []series.Column{{Name: req.Label(), Values: out}}, nil
	}
}

func hlc(f series.Frame) (high, low, close []float64, err error) {
	if high, err = f.Column("high"); err != nil {
		return nil, nil, nil, err
	}
	if low, err = f.Column("low"); err != nil {
		return nil, nil, nil, err
	}
	if close, err = f.Column("close"); err != nil {
		return nil, nil, nil, err
	}
	return high, low, close, nil
}

func evalKAMA(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	src, err := f.Column(req.Source)
	if err != nil {
		return nil, err
	}
	out, err := trend.KAMAWithParams(src, req.Int("period", cfg.Period), req.Int("fast", cfg.KAMAFast), req.Int("slow", cfg.KAMASlow))
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}

func evalVWMA(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	src, err := f.Column(req.Source)
	if err != nil {
		return nil, err
	}
	vol, err := f.Column("volume")
	if err != nil {
		return nil, err
	}
	out, err := volume.VWMA(src, vol, req.Int("period", cfg.Period))
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}

func evalMACD(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	src, err := f.Column(req.Source)
	if err != nil {
		return nil, err
	}
	res, err := momentum.MACD(src, req.Int("short", cfg.MACDShort), req.Int("long", cfg.MACDLong), req.Int("signal", cfg.MACDSignal))
	if err != nil {
		return nil, err
	}
	return []series.Column{
		{Name: "macd", Values: res.MACD},
		{Name: "signal", Values: res.Signal},
		{Name: "histogram", Values: res.Histogram},
	}, nil
}

func evalRSI(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	src, err := f.Column(req.Source)
	if err != nil {
		return nil, err
	}
	out, err := momentum.RSI(src, req.Int("period", cfg.RSIPeriod), req.Bool("round", false))
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}

func evalStochRSI(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	src, err := f.Column(req.Source)
	if err != nil {
		return nil, err
	}
	res, err := momentum.StochasticRSI(src,
		req.Int("period", cfg.RSIPeriod),
		req.Int("smooth_k", cfg.StochRSISmoothK),
		req.Int("smooth_d", cfg.StochRSISmoothD))
	if err != nil {
		return nil, err
	}
	return []series.Column{
		{Name: "rsi", Values: res.RSI},
		{Name: "k", Values: res.K},
		{Name: "d", Values: res.D},
	}, nil
}

func evalAroon(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	high, err := f.Column("high")
	if err != nil {
		return nil, err
	}
	low, err := f.Column("low")
	if err != nil {
		return nil, err
	}
	out, err := momentum.AroonOscillator(high, low, req.Int("period", cfg.Period))
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}

func evalStochastic(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	high, low, close, err := hlc(f)
	if err != nil {
		return nil, err
	}
	res, err := momentum.StochasticOscillator(high, low, close,
		req.Int("k_period", cfg.StochKPeriod),
		req.Int("k_slowing", cfg.StochSlowing),
		req.Int("d_period", cfg.StochDPeriod))
	if err != nil {
		return nil, err
	}
	return []series.Column{
		{Name: "k", Values: res.K},
		{Name: "d", Values: res.D},
	}, nil
}

func evalBollinger(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	src, err := f.Column(req.Source)
	if err != nil {
		return nil, err
	}
	res, err := volatility.BollingerBands(src,
		req.Int("period", cfg.BollingerPeriod),
		req.Float("multiplier", cfg.BollingerMultiplier))
	if err != nil {
		return nil, err
	}
	return []series.Column{
		{Name: "lower", Values: res.Lower},
		{Name: "middle", Values: res.Middle},
		{Name: "upper", Values: res.Upper},
	}, nil
}

func evalTrueRange(f series.Frame, req config.Request, _ config.IndicatorConfig) ([]series.Column, error) {
	high, low, close, err := hlc(f)
	if err != nil {
		return nil, err
	}
	out, err := volatility.TrueRange(high, low, close)
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}

func evalWAD(f series.Frame, req config.Request, _ config.IndicatorConfig) ([]series.Column, error) {
	high, low, close, err := hlc(f)
	if err != nil {
		return nil, err
	}
	out, err := volatility.WAD(high, low, close)
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}

func evalVWAP(f series.Frame, req config.Request, _ config.IndicatorConfig) ([]series.Column, error) {
	high, low, close, err := hlc(f)
	if err != nil {
		return nil, err
	}
	vol, err := f.Column("volume")
	if err != nil {
		return nil, err
	}
	out, err := volume.VWAP(high, low, close, vol)
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}

func evalMFI(f series.Frame, req config.Request, cfg config.IndicatorConfig) ([]series.Column, error) {
	high, low, close, err := hlc(f)
	if err != nil {
		return nil, err
	}
	vol, err := f.Column("volume")
	if err != nil {
		return nil, err
	}
	out, err := volume.MFI(high, low, close, vol, req.Int("period", cfg.Period))
	if err != nil {
		return nil, err
	}
	return []series.Column{{Name: req.Label(), Values: out}}, nil
}
