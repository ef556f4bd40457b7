package config

import "fmt"

const (
	defaultMetricsPort  = 2112
	maxValidNetworkPort = 65535
)

type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Port == 0 {
		cfg.Port = defaultMetricsPort
	}
	if cfg.Port < 0 || cfg.Port > maxValidNetworkPort {
		return fmt.Errorf("metrics port must be in the 0-%d range", maxValidNetworkPort)
	}
	return nil
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	return cfg.Port
}
