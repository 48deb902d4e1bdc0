package config

import (
	"fmt"
	"math"
)

// fractionalParams lists the parameters that may hold non-integer values.
// Every other parameter is a count of bars or a flag.
var fractionalParams = map[string]bool{
	"multiplier": true,
}

// Request asks for one indicator evaluation.
type Request struct {
	// Indicator is the registry name, e.g. "sma" or "bbands".
	Indicator string `yaml:"indicator"`
	// Name labels the output; it defaults to Indicator.
	Name string `yaml:"name,omitempty"`
	// Source picks the frame column single-input indicators read. Empty
	// means close.
	Source string `yaml:"source,omitempty"`
	// Format is "array" (default) or "labeled".
	Format string `yaml:"format,omitempty"`
	// Params holds indicator parameters such as period or multiplier.
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Label returns the output name.
func (r Request) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Indicator
}

// Int returns the integer parameter key, or def when it is absent.
func (r Request) Int(key string, def int) int {
	v, ok := r.Params[key]
	if !ok {
		return def
	}
	return int(v)
}

// Float returns the parameter key, or def when it is absent.
func (r Request) Float(key string, def float64) float64 {
	v, ok := r.Params[key]
	if !ok {
		return def
	}
	return v
}

// Bool treats any non-zero parameter as true.
func (r Request) Bool(key string, def bool) bool {
	v, ok := r.Params[key]
	if !ok {
		return def
	}
	return v != 0
}

// Validate checks the request shape. Parameter ranges are left to the
// indicator itself.
func (r Request) Validate() error {
	if r.Indicator == "" {
		return fmt.Errorf("%w: request %q has no indicator", ErrInvalidConfig, r.Name)
	}
	for k, v := range r.Params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: request %q: parameter %s is not finite", ErrInvalidConfig, r.Label(), k)
		}
		if !fractionalParams[k] && v != math.Trunc(v) {
			return fmt.Errorf("%w: request %q: parameter %s must be a whole number, got %v", ErrInvalidConfig, r.Label(), k, v)
		}
	}
	return nil
}
