package sse

import (
	"fmt"
	"sync"

	"github.com/streamwire/ssekit/errors"
)

// Transport is the outbound capability a StreamWriter pushes bytes through.
// Implementations are supplied by the surrounding server: Send appends
// bytes to an already-established response stream, Close terminates the
// underlying connection.
type Transport interface {
	Send(p []byte) error
	Close() error
}

// WriterOption configures a StreamWriter.
type WriterOption func(*StreamWriter)

// WithPreamble arranges for the given bytes (typically the SSE status line
// and headers) to be sent once, immediately at construction. A failed
// preamble send leaves the writer closed.
func WithPreamble(preamble []byte) WriterOption {
	return func(w *StreamWriter) {
		w.preamble = preamble
	}
}

// StreamWriter is a per-connection synchronized sink. A single lock
// serializes Write and Close so no two frames interleave on the wire and
// the open check is atomic with the send. The open state is a one-way
// latch: once closed, every further call fails without side effects.
type StreamWriter struct {
	mu        sync.Mutex
	transport Transport
	open      bool
	preamble  []byte
}

// NewStreamWriter wraps a transport. The writer starts open; if a preamble
// was configured and its send fails, the writer is returned already closed.
func NewStreamWriter(t Transport, opts ...WriterOption) *StreamWriter {
	w := &StreamWriter{transport: t, open: true}
	for _, opt := range opts {
		opt(w)
	}
	if len(w.preamble) > 0 {
		if err := t.Send(w.preamble); err != nil {
			w.open = false
			_ = t.Close()
		}
	}
	return w
}

// Write encodes the event and sends the frame. A send failure latches the
// writer closed and closes the transport; the error carries
// errors.ErrStreamClosed when the writer was already closed.
func (w *StreamWriter) Write(e Event) error {
	return w.send(Encode(e))
}

// WriteRaw sends pre-serialized SSE payload bytes unchanged. The caller is
// responsible for frame boundaries.
func (w *StreamWriter) WriteRaw(p []byte) error {
	return w.send(p)
}

// Comment sends an SSE comment frame, used as a keep-alive probe.
func (w *StreamWriter) Comment(text string) error {
	return w.send(Comment(text))
}

func (w *StreamWriter) send(frame []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return errors.ErrStreamClosed
	}
	if err := w.transport.Send(frame); err != nil {
		w.open = false
		_ = w.transport.Close()
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}

// Close latches the writer closed and asks the transport to terminate the
// connection. Closing an already-closed writer is a no-op returning nil.
func (w *StreamWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.open {
		return nil
	}
	w.open = false
	return w.transport.Close()
}

// IsOpen reports whether the writer still accepts writes.
func (w *StreamWriter) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}
