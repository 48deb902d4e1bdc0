package config

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// -----------------------------------------------------------------------------
// IndicatorConfig – central place for all tunable defaults
// -----------------------------------------------------------------------------
type IndicatorConfig struct {
	// Period is the window used by single-period indicators when a request
	// does not name one.
	Period int `yaml:"period"`

	RSIPeriod int `yaml:"rsi_period"`

	MACDShort  int `yaml:"macd_short"`
	MACDLong   int `yaml:"macd_long"`
	MACDSignal int `yaml:"macd_signal"`

	StochKPeriod int `yaml:"stoch_k_period"`
	StochSlowing int `yaml:"stoch_slowing"`
	StochDPeriod int `yaml:"stoch_d_period"`

	StochRSISmoothK int `yaml:"stoch_rsi_smooth_k"`
	StochRSISmoothD int `yaml:"stoch_rsi_smooth_d"`

	BollingerPeriod     int     `yaml:"bollinger_period"`
	BollingerMultiplier float64 `yaml:"bollinger_multiplier"`

	KAMAFast int `yaml:"kama_fast"`
	KAMASlow int `yaml:"kama_slow"`

	// MaxWorkers bounds how many requests the suite evaluates at once.
	MaxWorkers int `yaml:"max_workers"`
}

// DefaultConfig returns the conventional defaults for every indicator.
func DefaultConfig() IndicatorConfig {
	return IndicatorConfig{
		Period:              14,
		RSIPeriod:           14,
		MACDShort:           12,
		MACDLong:            26,
		MACDSignal:          9,
		StochKPeriod:        14,
		StochSlowing:        3,
		StochDPeriod:        3,
		StochRSISmoothK:     3,
		StochRSISmoothD:     3,
		BollingerPeriod:     20,
		BollingerMultiplier: 2,
		KAMAFast:            2,
		KAMASlow:            30,
		MaxWorkers:          runtime.NumCPU(),
	}
}

// -------------------------------------------------------------------
// Validate – reports every out-of-range value at once.
// -------------------------------------------------------------------
func (c IndicatorConfig) Validate() error {
	var err error
	for _, p := range []struct {
		name  string
		value int
	}{
		{"period", c.Period},
		{"rsi_period", c.RSIPeriod},
		{"macd_short", c.MACDShort},
		{"macd_long", c.MACDLong},
		{"macd_signal", c.MACDSignal},
		{"stoch_k_period", c.StochKPeriod},
		{"stoch_slowing", c.StochSlowing},
		{"stoch_d_period", c.StochDPeriod},
		{"stoch_rsi_smooth_k", c.StochRSISmoothK},
		{"stoch_rsi_smooth_d", c.StochRSISmoothD},
		{"bollinger_period", c.BollingerPeriod},
		{"kama_fast", c.KAMAFast},
		{"kama_slow", c.KAMASlow},
		{"max_workers", c.MaxWorkers},
	} {
		if p.value < 1 {
			err = multierr.Append(err, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, p.name, p.value))
		}
	}
	if c.MACDShort >= c.MACDLong {
		err = multierr.Append(err, fmt.Errorf("%w: macd_short (%d) must be less than macd_long (%d)", ErrInvalidConfig, c.MACDShort, c.MACDLong))
	}
	if c.KAMAFast > c.KAMASlow {
		err = multierr.Append(err, fmt.Errorf("%w: kama_fast (%d) must not exceed kama_slow (%d)", ErrInvalidConfig, c.KAMAFast, c.KAMASlow))
	}
	if c.BollingerMultiplier < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: bollinger_multiplier must not be negative, got %v", ErrInvalidConfig, c.BollingerMultiplier))
	}
	return err
}
