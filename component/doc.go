// Package component defines the core interfaces for lifecycle-managed
// infrastructure services in ssekit.
//
// Components represent services that require startup, shutdown, and health
// monitoring — the HTTP server hosting SSE endpoints, the SSE registry
// itself, and anything an application builds around them. They are started
// in registration order and stopped in reverse so a push registry drains
// before the server that feeds it goes away.
//
// # Interfaces
//
//   - Component: core lifecycle interface (Start/Stop/Health)
//   - Describable: startup summary descriptions
//   - RouteProvider: HTTP route reporting for the startup summary
package component
