// Package sse implements Server-Sent Events (SSE) as a server-to-client
// push messaging layer on long-lived HTTP responses.
//
// It provides the wire codec (Encode plus an incremental Decoder that is
// resumable across arbitrarily chunked input), request/response validation
// predicates, a per-connection synchronized StreamWriter over an abstract
// Transport, and a Registry that tracks live connections and supports
// unicast and best-effort broadcast delivery.
//
// # Architecture
//
//   - Event / Encode / Decoder: the SSE text frame codec
//   - StreamWriter: serialized writes to one peer over a Transport
//   - Registry: connection table with Register / SendToClient / Broadcast
//   - Handler: Gin handler binding an HTTP response stream to the Registry
//
// # Usage
//
//	reg := sse.NewRegistry()
//	router.GET("/events", sse.Handler(reg, cfg))
//	reg.Broadcast(sse.Event{Type: "price", Data: payload})
//
// Delivery is at-most-once and fire-and-forget: there is no Last-Event-ID
// resumption and no backlog for slow consumers.
package sse
