// Package logger provides structured logging for ssekit applications
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// Long-lived stream code (registries, writers, readers) should obtain a
// component-tagged logger once and reuse it rather than resolving one
// per write.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("sse")
//	log.Info("client connected", logger.Fields("connection_id", id))
package logger
