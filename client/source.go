package client

import (
	"io"
	"sync"
	"time"

	"github.com/streamwire/ssekit/errors"
)

// readResult carries one pump iteration's outcome.
type readResult struct {
	chunk []byte
	err   error
}

// BodySource adapts an io.ReadCloser (typically an HTTP response body)
// into a ReadSource with per-read timeouts. A background goroutine pumps
// the body so each Read can select between arriving bytes and a timer.
type BodySource struct {
	body    io.ReadCloser
	results chan readResult
	done    chan struct{}

	mu     sync.Mutex
	final  error // sticky terminal error after the pump exits
	closed bool
}

// NewBodySource starts pumping the body in chunks of bufferSize bytes.
// Close the source to release the pump goroutine.
func NewBodySource(body io.ReadCloser, bufferSize int) *BodySource {
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	s := &BodySource{
		body:    body,
		results: make(chan readResult),
		done:    make(chan struct{}),
	}
	go s.pump(bufferSize)
	return s
}

// pump reads the body until a terminal error. Every channel send selects
// against done so the goroutine exits when the consumer walks away with a
// chunk still in flight.
func (s *BodySource) pump(bufferSize int) {
	buf := make([]byte, bufferSize)
	for {
		n, err := s.body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case s.results <- readResult{chunk: chunk}:
			case <-s.done:
				return
			}
		}
		if err != nil {
			select {
			case s.results <- readResult{err: err}:
				close(s.results)
			case <-s.done:
			}
			return
		}
	}
}

// Read returns the next chunk, io.EOF at end of stream, or
// errors.ErrReadTimeout when no bytes arrive within timeout. After a
// terminal error every further call returns that same error.
func (s *BodySource) Read(timeout time.Duration) ([]byte, error) {
	s.mu.Lock()
	final := s.final
	s.mu.Unlock()
	if final != nil {
		return nil, final
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res, ok := <-s.results:
		if !ok {
			return nil, io.EOF
		}
		if res.err != nil {
			s.mu.Lock()
			s.final = res.err
			s.mu.Unlock()
			return nil, res.err
		}
		return res.chunk, nil

	case <-timer.C:
		return nil, errors.ErrReadTimeout
	}
}

// Close releases the pump goroutine and closes the underlying body.
// It is idempotent.
func (s *BodySource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	return s.body.Close()
}
