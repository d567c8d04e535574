package client

import (
	"io"
	"net"
	"time"

	"github.com/streamwire/ssekit/errors"
	"github.com/streamwire/ssekit/logger"
	"github.com/streamwire/ssekit/sse"
)

// ReadSource is the inbound byte stream a StreamReader consumes. Read
// blocks until bytes arrive, the stream ends (io.EOF), the timeout
// elapses, or the transport fails.
type ReadSource interface {
	Read(timeout time.Duration) ([]byte, error)
}

// EventCallback is invoked for every decoded event. Returning false stops
// the stream; the reader treats this as a clean stop, not an error.
type EventCallback func(ev sse.Event) bool

// StreamReader reassembles a possibly-chunked byte stream into an ordered
// sequence of events. Each Run uses a private decoder, so readers may be
// reused across streams but never concurrently.
type StreamReader struct {
	readTimeout time.Duration
	log         *logger.Logger
}

// NewStreamReader creates a reader with the given per-read timeout.
func NewStreamReader(readTimeout time.Duration) *StreamReader {
	return &StreamReader{
		readTimeout: readTimeout,
		log:         logger.Get("sse.client"),
	}
}

// Run reads from src until the stream ends, the callback requests a stop,
// or a read fails. A clean EOF returns nil after a final decode pass that
// surfaces any terminal frame missing its blank-line boundary, so trailing
// data is delivered rather than silently discarded. Timeouts return an
// error matching errors.ErrReadTimeout; other failures return a
// stream-ended error wrapping the cause.
func (r *StreamReader) Run(src ReadSource, callback EventCallback) error {
	dec := &sse.Decoder{}

	for {
		chunk, err := src.Read(r.readTimeout)
		if err != nil {
			if err == io.EOF {
				if ev, ok := dec.Flush(); ok {
					r.log.Debug("delivering terminal frame without boundary", logger.Fields(
						logger.FieldEventType, ev.Type,
					))
					callback(ev)
				}
				return nil
			}
			if isTimeout(err) {
				return errors.ReadTimeout(r.readTimeout.Milliseconds())
			}
			return errors.StreamEnded(err)
		}

		for _, ev := range dec.Feed(chunk) {
			if !callback(ev) {
				return nil
			}
		}
	}
}

// isTimeout reports whether err represents a read deadline expiry, either
// our own sentinel or a net.Error timeout from the transport.
func isTimeout(err error) bool {
	if errors.Is(err, errors.ErrReadTimeout) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
