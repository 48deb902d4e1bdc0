package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Document is the YAML layout accepted by Load:
//
//	defaults:
//	  rsi_period: 10
//	requests:
//	  - indicator: sma
//	    params: {period: 20}
//	  - indicator: bbands
//	    format: labeled
type Document struct {
	Defaults IndicatorConfig `yaml:"defaults"`
	Requests []Request       `yaml:"requests"`
}

// Validate checks the defaults and every request, reporting all problems.
func (d Document) Validate() error {
	err := d.Defaults.Validate()
	for _, r := range d.Requests {
		err = multierr.Append(err, r.Validate())
	}
	return err
}

// Load decodes a YAML document. Defaults not present in the document keep
// their DefaultConfig values. An empty document is valid.
func Load(r io.Reader) (Document, error) {
	doc := Document{Defaults: DefaultConfig()}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("decode config: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFile reads and decodes the YAML document at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}
