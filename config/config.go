package config

import (
	"fmt"
	"time"

	"github.com/kbukum/listkit/logger"
	"github.com/kbukum/listkit/observe"
	"github.com/kbukum/listkit/validation"
)

// MetricsConfig wraps the meter settings with an on/off switch so
// applications can run without an OTLP endpoint.
type MetricsConfig struct {
	Enabled             bool `yaml:"enabled" mapstructure:"enabled"`
	observe.MeterConfig `yaml:",inline" mapstructure:",squash"`
}

// Config contains the configuration for an application embedding listkit.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Metrics     MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()

	if c.Metrics.Enabled {
		if c.Metrics.ServiceName == "" {
			c.Metrics.ServiceName = c.Name
		}
		if c.Metrics.Environment == "" {
			c.Metrics.Environment = c.Environment
		}
		if c.Metrics.Endpoint == "" {
			c.Metrics.Endpoint = "localhost:4318"
		}
		if c.Metrics.Interval == 0 {
			c.Metrics.Interval = 15 * time.Second
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
