package config

import (
	"errors"
	"time"
)

const defaultRefreshInterval = 4 * time.Minute

// PollerConfig controls the background snapshot refresh. The refresh
// interval is normally set just under the cache TTL so callers rarely
// hit a cold rebuild.
type PollerConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	if cfg.RefreshInterval < 0 {
		return errors.New("refresh-interval must be positive")
	}
	return nil
}
