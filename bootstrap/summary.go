package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/streamwire/ssekit/component"
	"github.com/streamwire/ssekit/logger"
)

// InfrastructureInfo holds detailed infrastructure component information.
type InfrastructureInfo struct {
	Name    string
	Type    string // e.g. "server", "sse"
	Details string
	Port    int
	Healthy bool
}

// RouteInfo represents a registered HTTP route.
type RouteInfo struct {
	Method  string
	Path    string
	Handler string
}

// Summary displays the application bootstrap process. Infrastructure and
// route information is auto-collected from the component registry at
// display time via the Describable and RouteProvider interfaces.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	infrastructure  []InfrastructureInfo
	routes          []RouteInfo
}

// NewSummary creates a new bootstrap summary tracker.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{
		serviceName:    serviceName,
		version:        version,
		infrastructure: make([]InfrastructureInfo, 0),
		routes:         make([]RouteInfo, 0),
	}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// TrackInfrastructure adds an infrastructure entry manually, for pieces
// that are not registered as components.
func (s *Summary) TrackInfrastructure(name, componentType, details string, port int, healthy bool) {
	s.infrastructure = append(s.infrastructure, InfrastructureInfo{
		Name:    name,
		Type:    componentType,
		Details: details,
		Port:    port,
		Healthy: healthy,
	})
}

// TrackRoute records an HTTP route manually.
func (s *Summary) TrackRoute(method, path, handler string) {
	s.routes = append(s.routes, RouteInfo{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

// collect gathers infrastructure and route information from the registry.
func (s *Summary) collect(registry *component.Registry) ([]InfrastructureInfo, []RouteInfo) {
	infrastructure := append([]InfrastructureInfo{}, s.infrastructure...)
	routes := append([]RouteInfo{}, s.routes...)
	if registry == nil {
		return infrastructure, routes
	}

	health := make(map[string]component.Health)
	for _, h := range registry.HealthAll(context.Background()) {
		health[h.Name] = h
	}

	for _, c := range registry.All() {
		if d, ok := c.(component.Describable); ok {
			desc := d.Describe()
			name := desc.Name
			if name == "" {
				name = c.Name()
			}
			infrastructure = append(infrastructure, InfrastructureInfo{
				Name:    name,
				Type:    desc.Type,
				Details: desc.Details,
				Port:    desc.Port,
				Healthy: health[c.Name()].Status == component.StatusHealthy,
			})
		}
		if rp, ok := c.(component.RouteProvider); ok {
			for _, r := range rp.Routes() {
				routes = append(routes, RouteInfo{
					Method:  r.Method,
					Path:    r.Path,
					Handler: r.Handler,
				})
			}
		}
	}
	return infrastructure, routes
}

// DisplaySummary prints the bootstrap summary including live health from the registry.
func (s *Summary) DisplaySummary(registry *component.Registry, log *logger.Logger) {
	infrastructure, routes := s.collect(registry)

	// Header
	fmt.Printf("\n")
	fmt.Printf("🚀 %s v%s started in %.2fs\n\n",
		s.serviceName, s.version, s.startupDuration.Seconds())

	// Infrastructure (detailed)
	if len(infrastructure) > 0 {
		fmt.Printf("📊 Infrastructure\n")
		for i, inf := range infrastructure {
			prefix := "├──"
			if i == len(infrastructure)-1 {
				prefix = "└──"
			}
			icon := "✅"
			if !inf.Healthy {
				icon = "❌"
			}
			details := inf.Details
			if inf.Port > 0 {
				details = fmt.Sprintf("%s (:%d)", details, inf.Port)
			}
			fmt.Printf("   %s %s %s: %s\n", prefix, icon, inf.Name, details)
		}
	} else {
		fmt.Printf("📊 Infrastructure\n")
		fmt.Printf("   └── No components registered\n")
	}

	// Routes
	if len(routes) > 0 {
		fmt.Printf("\n🌐 Routes (%d)\n", len(routes))
		for i, r := range routes {
			prefix := "├──"
			if i == len(routes)-1 {
				prefix = "└──"
			}
			fmt.Printf("   %s %-7s %s → %s\n", prefix, r.Method, r.Path, r.Handler)
		}
	}

	// Live health check
	if registry != nil {
		healthResults := registry.HealthAll(context.Background())
		if len(healthResults) > 0 {
			fmt.Printf("\n🏥 Health Check\n")
			for i, h := range healthResults {
				prefix := "├──"
				if i == len(healthResults)-1 {
					prefix = "└──"
				}
				icon := healthStatusIcon(h.Status)
				msg := ""
				if h.Message != "" {
					msg = fmt.Sprintf(": %s", h.Message)
				}
				fmt.Printf("   %s %s %s: %s%s\n", prefix, icon, h.Name, strings.ToLower(string(h.Status)), msg)
			}
		}
	}

	fmt.Printf("\n")
}

func healthStatusIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}
