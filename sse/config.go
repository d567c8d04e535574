package sse

import (
	"fmt"
	"time"
)

// Config contains SSE endpoint configuration.
type Config struct {
	// KeepAliveSeconds is the interval between keep-alive comment frames.
	// It should stay below typical proxy idle timeouts (usually 60s).
	KeepAliveSeconds int `yaml:"keepalive_seconds" mapstructure:"keepalive_seconds"`
	// ConnectedEvent controls whether a "connected" event carrying the
	// connection id is sent as the first frame of each stream.
	ConnectedEvent bool `yaml:"connected_event" mapstructure:"connected_event"`
}

// ApplyDefaults applies default values to SSE configuration.
func (c *Config) ApplyDefaults() {
	if c.KeepAliveSeconds == 0 {
		c.KeepAliveSeconds = 30
	}
}

// Validate validates SSE configuration.
func (c *Config) Validate() error {
	if c.KeepAliveSeconds < 1 {
		return fmt.Errorf("sse.keepalive_seconds must be positive (got: %d)", c.KeepAliveSeconds)
	}
	return nil
}

func (c *Config) keepAliveInterval() time.Duration {
	return time.Duration(c.KeepAliveSeconds) * time.Second
}
