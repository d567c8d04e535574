package sse

// Generic SSE event type constants (infrastructure only).
// Domain-specific event types should be defined in your application.
const (
	// EventTypeConnected is sent when a client successfully connects.
	EventTypeConnected = "connected"

	// EventTypeKeepAlive identifies keep-alive events for producers that
	// prefer typed events over comment frames.
	EventTypeKeepAlive = "keepalive"

	// EventTypeMessage is the protocol default for events without an
	// explicit "event:" field.
	EventTypeMessage = "message"

	// EventTypeError is sent when an error occurs.
	EventTypeError = "error"
)

// MimeEventStream is the SSE media type.
const MimeEventStream = "text/event-stream"

// Event represents a single server-sent event.
//
// Zero values mean "unset": an empty ID emits no "id:" line, an empty Type
// emits no "event:" line, and a zero Retry emits no "retry:" line. Data may
// contain embedded newlines; it is split into one "data:" line per segment
// on encode and rejoined with "\n" on decode.
type Event struct {
	// ID is the optional event ID (from the "id:" field).
	ID string
	// Type is the event type (from the "event:" field). Consumers treat an
	// empty Type as EventTypeMessage per the SSE specification.
	Type string
	// Data is the event payload. Opaque to this package.
	Data string
	// Retry is the reconnection delay hint in milliseconds. 0 means unset.
	Retry uint32
}

// IsEmpty reports whether the event carries no fields at all, as produced
// by decoding a frame that contained only comments or blank lines. Such
// events are benign and may be ignored by callers.
func (e Event) IsEmpty() bool {
	return e == Event{}
}
