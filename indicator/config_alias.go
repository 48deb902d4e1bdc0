package indicator

import "github.com/evdnx/taseries/config"

// Re-export config defaults and types so callers of the facade need a single
// import.
type IndicatorConfig = config.IndicatorConfig

func DefaultConfig() IndicatorConfig {
	return config.DefaultConfig()
}
