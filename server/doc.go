// Package server provides the HTTP server for ssekit applications using
// Gin with HTTP/2 and h2c support. Write timeouts default to zero so
// long-lived event streams are not cut off by the server.
//
// The server follows the component pattern with lifecycle management,
// health endpoints, and configurable middleware.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: request id generation and propagation
//   - CORS: cross-origin resource sharing configuration
//   - RequestLogger: request logging with duration tracking
//   - BodySizeLimit: request body size limits
//   - RateLimit: sliding-window rate limiting for publish endpoints
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: component health aggregation
//   - /info: service and build information
//   - /metrics: runtime memory and goroutine metrics
//   - /alive, /ready: Kubernetes probes
//   - /version: build version information
package server
