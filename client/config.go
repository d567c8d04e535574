package client

import (
	"fmt"
	"time"
)

// Config contains SSE client configuration.
type Config struct {
	// ReadTimeoutSeconds bounds each individual read from the stream.
	// The connection is considered dead when no bytes (including
	// keep-alive comments) arrive within this window.
	ReadTimeoutSeconds int `yaml:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`
	// ConnectTimeoutSeconds bounds establishing the HTTP connection and
	// receiving response headers.
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds" mapstructure:"connect_timeout_seconds"`
	// BufferSize is the chunk size used when pumping the response body.
	BufferSize int `yaml:"buffer_size" mapstructure:"buffer_size"`
}

// ApplyDefaults applies default values to client configuration.
func (c *Config) ApplyDefaults() {
	if c.ReadTimeoutSeconds == 0 {
		c.ReadTimeoutSeconds = 60
	}
	if c.ConnectTimeoutSeconds == 0 {
		c.ConnectTimeoutSeconds = 10
	}
	if c.BufferSize == 0 {
		c.BufferSize = 4096
	}
}

// Validate validates client configuration.
func (c *Config) Validate() error {
	if c.ReadTimeoutSeconds < 1 {
		return fmt.Errorf("client.read_timeout_seconds must be positive (got: %d)", c.ReadTimeoutSeconds)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("client.buffer_size must be positive (got: %d)", c.BufferSize)
	}
	return nil
}

func (c *Config) readTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c *Config) connectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}
