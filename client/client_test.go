package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/streamwire/ssekit/errors"
	"github.com/streamwire/ssekit/sse"
)

func streamHandler(frames []string, hold time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", sse.MimeEventStream)
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)

		flusher := w.(http.Flusher)
		flusher.Flush()
		for _, f := range frames {
			w.Write([]byte(f))
			flusher.Flush()
		}
		if hold > 0 {
			select {
			case <-r.Context().Done():
			case <-time.After(hold):
			}
		}
	}
}

func TestSubscribeDeliverEvents(t *testing.T) {
	srv := httptest.NewServer(streamHandler([]string{
		"event: tick\ndata: 1\n\n",
		": keepalive\n\n",
		"event: tick\ndata: 2\n\n",
	}, 0))
	defer srv.Close()

	c := New(Config{ReadTimeoutSeconds: 2})

	var events []sse.Event
	err := c.Subscribe(context.Background(), srv.URL, func(ev sse.Event) bool {
		events = append(events, ev)
		return true
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Data != "1" || events[1].Data != "2" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestSubscribeCallbackStop(t *testing.T) {
	srv := httptest.NewServer(streamHandler([]string{
		"data: 1\n\n",
		"data: 2\n\n",
	}, 5*time.Second))
	defer srv.Close()

	c := New(Config{ReadTimeoutSeconds: 2})

	var seen int
	err := c.Subscribe(context.Background(), srv.URL, func(ev sse.Event) bool {
		seen++
		return false
	})
	if err != nil {
		t.Fatalf("callback stop must return nil, got %v", err)
	}
	if seen != 1 {
		t.Errorf("expected 1 callback, got %d", seen)
	}
}

func TestSubscribeContextCancel(t *testing.T) {
	srv := httptest.NewServer(streamHandler([]string{
		"data: 1\n\n",
	}, 10*time.Second))
	defer srv.Close()

	c := New(Config{ReadTimeoutSeconds: 5})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.Subscribe(ctx, srv.URL, func(ev sse.Event) bool {
			return true
		})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("cancellation must be a clean stop, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("subscribe did not return after cancellation")
	}
}

func TestSubscribeReadTimeout(t *testing.T) {
	srv := httptest.NewServer(streamHandler(nil, 10*time.Second))
	defer srv.Close()

	c := New(Config{ReadTimeoutSeconds: 1})

	err := c.Subscribe(context.Background(), srv.URL, func(ev sse.Event) bool {
		return true
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeReadTimeout {
		t.Errorf("expected read timeout, got %v", err)
	}
}

func TestSubscribeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(Config{})

	err := c.Subscribe(context.Background(), srv.URL, func(ev sse.Event) bool {
		return true
	})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidResponse {
		t.Errorf("expected invalid response error, got %v", err)
	}
}

func TestSubscribeConnectionRefused(t *testing.T) {
	c := New(Config{ConnectTimeoutSeconds: 1})

	err := c.Subscribe(context.Background(), "http://127.0.0.1:1/events", func(ev sse.Event) bool {
		return true
	})
	if err == nil {
		t.Fatal("expected connection error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeConnectionFailed {
		t.Errorf("expected connection failed error, got %v", err)
	}
}

func TestSubscribeNonStreamHeadersTolerated(t *testing.T) {
	// A 200 response with wrong headers still streams; validation is
	// advisory.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("data: anyway\n\n"))
	}))
	defer srv.Close()

	c := New(Config{ReadTimeoutSeconds: 2})

	var got string
	err := c.Subscribe(context.Background(), srv.URL, func(ev sse.Event) bool {
		got = ev.Data
		return true
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if got != "anyway" {
		t.Errorf("expected event despite headers, got %q", got)
	}
}
