package config

import (
	"fmt"

	"github.com/streamwire/ssekit/logger"
	"github.com/streamwire/ssekit/validation"
)

// ServiceConfig contains the configuration fields every service needs.
// Projects extend this by embedding it in their own config structs.
type ServiceConfig struct {
	Name        string        `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `json:"environment" yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string        `json:"version" yaml:"version" mapstructure:"version"`
	Debug       bool          `json:"debug" yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `json:"logging" yaml:"logging" mapstructure:"logging"`
}

// GetServiceConfig returns the base ServiceConfig. When embedded in a
// larger config struct the method is promoted, so the embedding struct
// provides access to the base fields without a field name.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Embedding structs override this and call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	// Propagate service name into logging so Init() tags records correctly.
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Embedding structs override this and call c.ServiceConfig.Validate() first.
func (c *ServiceConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
