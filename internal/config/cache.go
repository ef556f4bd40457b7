package config

import (
	"errors"
	"time"
)

const (
	defaultCacheTTL       = 5 * time.Minute
	defaultBuildBatchSize = 5
)

// CacheConfig controls the scored-agent snapshot cache and the build
// fan-out.
type CacheConfig struct {
	// TTL is how long a built snapshot is served before a rebuild.
	TTL time.Duration `mapstructure:"ttl"`
	// BuildBatchSize bounds how many agents are built concurrently.
	BuildBatchSize int `mapstructure:"build-batch-size"`
}

func (cfg *CacheConfig) Validate() error {
	if cfg.TTL == 0 {
		cfg.TTL = defaultCacheTTL
	}
	if cfg.TTL < 0 {
		return errors.New("cache ttl must be positive")
	}
	if cfg.BuildBatchSize == 0 {
		cfg.BuildBatchSize = defaultBuildBatchSize
	}
	if cfg.BuildBatchSize < 0 {
		return errors.New("build batch size must be positive")
	}
	return nil
}
