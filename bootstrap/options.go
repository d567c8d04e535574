package bootstrap

import (
	"time"

	"github.com/streamwire/ssekit/logger"
)

// Option customizes application construction.
type Option[C Config] func(*App[C])

// WithLogger replaces the logger derived from configuration.
func WithLogger[C Config](log *logger.Logger) Option[C] {
	return func(a *App[C]) {
		a.Logger = log
	}
}

// WithGracefulTimeout sets how long shutdown waits for components to stop.
// The default is 15 seconds.
func WithGracefulTimeout[C Config](timeout time.Duration) Option[C] {
	return func(a *App[C]) {
		a.gracefulTimeout = timeout
	}
}
