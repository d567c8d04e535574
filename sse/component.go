package sse

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/streamwire/ssekit/component"
)

// Component wraps a Registry as a lifecycle-managed component.
// Register it with the component registry so shutdown drains every open
// push connection automatically.
type Component struct {
	registry *Registry
	cfg      Config
	path     string
}

// ensure Component satisfies component.Component and Describable.
var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates an SSE component with a fresh Registry, served at
// the given route path.
func NewComponent(path string, cfg Config, opts ...RegistryOption) *Component {
	cfg.ApplyDefaults()
	return &Component{
		registry: NewRegistry(opts...),
		cfg:      cfg,
		path:     path,
	}
}

// Registry returns the underlying connection registry for event delivery.
func (c *Component) Registry() *Registry { return c.registry }

// Handler returns the Gin handler serving this component's SSE endpoint.
func (c *Component) Handler() gin.HandlerFunc { return Handler(c.registry, c.cfg) }

// Name returns the component name.
func (c *Component) Name() string { return "sse" }

// Start is a no-op: the registry accepts connections as soon as the route
// is mounted.
func (c *Component) Start(_ context.Context) error { return nil }

// Stop shuts the registry down, draining and closing all connections.
func (c *Component) Stop(_ context.Context) error {
	c.registry.Shutdown()
	return nil
}

// Health returns the health status of the SSE registry.
func (c *Component) Health(_ context.Context) component.Health {
	return component.Health{
		Name:    c.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("%d connections registered", c.registry.Len()),
	}
}

// Describe returns infrastructure summary info for the startup display.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "SSE Registry",
		Type:    "sse",
		Details: fmt.Sprintf("Path: %s keepalive=%ds", c.path, c.cfg.KeepAliveSeconds),
	}
}
