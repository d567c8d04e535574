package bootstrap

import (
	"context"

	"github.com/streamwire/ssekit/logger"
)

// Hook is a lifecycle callback. Hooks receive the application context and
// may abort startup by returning an error.
type Hook[C Config] func(ctx context.Context, app *App[C]) error

// OnStart registers a hook that runs after configuration but before components
// start. Use it to wire dependencies that components need at start time.
func (a *App[C]) OnStart(hook Hook[C]) *App[C] {
	a.onStart = append(a.onStart, hook)
	return a
}

// OnReady registers a hook that runs after all components have started.
func (a *App[C]) OnReady(hook Hook[C]) *App[C] {
	a.onReady = append(a.onReady, hook)
	return a
}

// OnStop registers a hook that runs during shutdown, before components stop.
func (a *App[C]) OnStop(hook Hook[C]) *App[C] {
	a.onStop = append(a.onStop, hook)
	return a
}

func (a *App[C]) runHooks(ctx context.Context, phase string, hooks []Hook[C]) error {
	for i, hook := range hooks {
		if err := hook(ctx, a); err != nil {
			a.Logger.Error("lifecycle hook failed", logger.Fields(
				"phase", phase,
				"hook", i,
				"error", err.Error(),
			))
			return err
		}
	}
	return nil
}
