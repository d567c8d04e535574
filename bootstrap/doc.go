// Package bootstrap orchestrates application lifecycle for ssekit services.
//
// It provides typed configuration handling, component registration, and
// startup/shutdown hooks for rapid service initialization.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.RegisterComponent(sseComponent)
//	app.RegisterComponent(server.NewComponent(srv))
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Run starts components in registration order, blocks until an OS signal,
// and stops them in reverse order within the graceful timeout.
package bootstrap
