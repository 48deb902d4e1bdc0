package suite

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/evdnx/taseries/config"
	"github.com/evdnx/taseries/series"
)

var log = logrus.WithField("component", "suite")

// Output is the result of one request.
type Output struct {
	Request config.Request
	Format  series.Format
	// Columns holds every output line as a plain, warm-up trimmed slice.
	Columns []series.Column
	// Table is filled only for FormatLabeled and shares the values in
	// Columns.
	Table series.Table
}

// Values returns the first output line, which is the only one for
// single-output indicators.
func (o Output) Values() []float64 {
	if len(o.Columns) == 0 {
		return nil
	}
	return o.Columns[0].Values
}

// Len returns the number of points in the first output line.
func (o Output) Len() int { return len(o.Values()) }

// ---------------------------------------------------------------------
// Suite – evaluates batches of indicator requests against one frame.
// ---------------------------------------------------------------------

type Suite struct {
	cfg      config.IndicatorConfig
	registry *Registry
}

// New creates a suite with the built-in registry.
func New(cfg config.IndicatorConfig) (*Suite, error) {
	return NewWithRegistry(cfg, NewRegistry())
}

// NewWithRegistry creates a suite that resolves names through reg.
func NewWithRegistry(cfg config.IndicatorConfig, reg *Registry) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Suite{cfg: cfg, registry: reg}, nil
}

// Registry returns the registry used to resolve request names.
func (s *Suite) Registry() *Registry { return s.registry }

// Config returns the suite's defaults.
func (s *Suite) Config() config.IndicatorConfig { return s.cfg }

// Evaluate runs every request against frame, at most MaxWorkers at a time,
// and returns the outputs in request order. The first failure cancels the
// remaining work and is returned.
func (s *Suite) Evaluate(ctx context.Context, frame series.Frame, requests []config.Request) ([]Output, error) {
	outputs := make([]Output, len(requests))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxWorkers)

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := s.evaluate(frame, req)
			if err != nil {
				log.WithError(err).WithField("indicator", req.Indicator).Warn("request failed")
				return fmt.Errorf("request %d (%s): %w", i, req.Label(), err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// EvaluateOne runs a single request synchronously.
func (s *Suite) EvaluateOne(frame series.Frame, req config.Request) (Output, error) {
	return s.evaluate(frame, req)
}

func (s *Suite) evaluate(frame series.Frame, req config.Request) (Output, error) {
	if err := req.Validate(); err != nil {
		return Output{}, err
	}
	format, err := series.ParseFormat(req.Format)
	if err != nil {
		return Output{}, err
	}
	eval, err := s.registry.Lookup(req.Indicator)
	if err != nil {
		return Output{}, err
	}
	cols, err := eval(frame, req, s.cfg)
	if err != nil {
		return Output{}, err
	}

	out := Output{Request: req, Format: format, Columns: cols}
	if format == series.FormatLabeled {
		out.Table = series.Bundle(frame.Index, cols...)
	}
	log.WithFields(logrus.Fields{
		"indicator": req.Indicator,
		"name":      req.Label(),
		"format":    format.String(),
		"points":    out.Len(),
	}).Debug("evaluated")
	return out, nil
}

// Evaluate runs requests with DefaultConfig and the built-in registry.
func Evaluate(ctx context.Context, frame series.Frame, requests []config.Request) ([]Output, error) {
	s, err := New(config.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return s.Evaluate(ctx, frame, requests)
}
