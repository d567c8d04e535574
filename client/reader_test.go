package client

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/streamwire/ssekit/errors"
	"github.com/streamwire/ssekit/sse"
)

// scriptedSource replays a fixed sequence of chunks, then a terminal error.
type scriptedSource struct {
	chunks   [][]byte
	terminal error
	pos      int
}

func (s *scriptedSource) Read(timeout time.Duration) ([]byte, error) {
	if s.pos < len(s.chunks) {
		chunk := s.chunks[s.pos]
		s.pos++
		return chunk, nil
	}
	if s.terminal == nil {
		return nil, io.EOF
	}
	return nil, s.terminal
}

func collect(t *testing.T, src ReadSource, timeout time.Duration) ([]sse.Event, error) {
	t.Helper()
	var events []sse.Event
	err := NewStreamReader(timeout).Run(src, func(ev sse.Event) bool {
		events = append(events, ev)
		return true
	})
	return events, err
}

func TestReaderSingleChunk(t *testing.T) {
	src := &scriptedSource{chunks: [][]byte{
		[]byte("event: tick\ndata: 1\n\nevent: tick\ndata: 2\n\n"),
	}}

	events, err := collect(t, src, time.Second)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Data != "2" {
		t.Errorf("unexpected second event: %+v", events[1])
	}
}

func TestReaderFragmentedChunks(t *testing.T) {
	src := &scriptedSource{chunks: [][]byte{
		[]byte("event: ti"),
		[]byte("ck\nda"),
		[]byte("ta: split"),
		[]byte("\n\n"),
	}}

	events, err := collect(t, src, time.Second)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != "tick" || events[0].Data != "split" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestReaderEOFFlushesTerminalFrame(t *testing.T) {
	src := &scriptedSource{chunks: [][]byte{
		[]byte("data: complete\n\ndata: no boundary"),
	}}

	events, err := collect(t, src, time.Second)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected terminal frame to be delivered, got %d events", len(events))
	}
	if events[1].Data != "no boundary" {
		t.Errorf("unexpected terminal event: %+v", events[1])
	}
}

func TestReaderCallbackStops(t *testing.T) {
	src := &scriptedSource{chunks: [][]byte{
		[]byte("data: 1\n\ndata: 2\n\ndata: 3\n\n"),
	}}

	var seen int
	err := NewStreamReader(time.Second).Run(src, func(ev sse.Event) bool {
		seen++
		return seen < 2
	})
	if err != nil {
		t.Fatalf("callback stop must be clean, got %v", err)
	}
	if seen != 2 {
		t.Errorf("expected 2 callbacks, got %d", seen)
	}
}

func TestReaderTimeout(t *testing.T) {
	src := &scriptedSource{terminal: errors.ErrReadTimeout}

	_, err := collect(t, src, 50*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeReadTimeout {
		t.Errorf("expected read timeout AppError, got %v", err)
	}
}

func TestReaderTransportFailure(t *testing.T) {
	src := &scriptedSource{terminal: fmt.Errorf("connection reset by peer")}

	_, err := collect(t, src, time.Second)
	if err == nil {
		t.Fatal("expected stream-ended error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeStreamEnded {
		t.Errorf("expected stream ended AppError, got %v", err)
	}
}

func TestReaderKeepAliveCommentsInvisible(t *testing.T) {
	src := &scriptedSource{chunks: [][]byte{
		[]byte(": keepalive 1\n\ndata: real\n\n: keepalive 2\n\n"),
	}}

	events, err := collect(t, src, time.Second)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("keep-alive comments must not surface, got %d events", len(events))
	}
	if events[0].Data != "real" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}
