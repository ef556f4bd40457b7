package config

import (
	"errors"
	"time"
)

const (
	defaultServerPort         = 8080
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 30 * time.Second
)

// ServerConfig defines the read-only HTTP API server.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Port == 0 {
		cfg.Port = defaultServerPort
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return errors.New("server port must be in the 0-65535 range")
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = defaultServerReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = defaultServerWriteTimeout
	}
	return nil
}
